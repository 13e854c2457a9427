package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TorbenJakobsen/decimaldate/internal/cli"
	"github.com/TorbenJakobsen/decimaldate/internal/docs"
)

func main() {
	outDir := flag.String("out", "docs", "directory to write the HTML reference to")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal("creating %s: %v", *outDir, err)
	}

	pages := docs.Pages(cli.Root())
	r := docs.NewRenderer()

	for i, page := range pages {
		html, err := r.Render(pages, i)
		if err != nil {
			fatal("%v", err)
		}

		outFile := filepath.Join(*outDir, page.Path)
		if err := os.WriteFile(outFile, html, 0o644); err != nil {
			fatal("writing %s: %v", outFile, err)
		}

		fmt.Printf("  generated %s\n", page.Path)
	}

	fmt.Printf("\n  %d pages generated\n", len(pages))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docgen: "+format+"\n", args...)
	os.Exit(1)
}
