// Package docs builds the HTML command reference from a cobra command tree.
package docs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/TorbenJakobsen/decimaldate/internal/stringutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Page is the reference for one command.
type Page struct {
	Title    string // full command path, eg. "decimaldate config get"
	Short    string
	Path     string // output file name
	Markdown string
}

// Pages returns one page per visible command under root, root first and
// the rest sorted by command path.
func Pages(root *cobra.Command) []Page {
	var cmds []*cobra.Command
	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		if c.Hidden || c.Name() == "help" {
			return
		}
		cmds = append(cmds, c)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
	if len(cmds) == 0 {
		return nil
	}

	slices.SortStableFunc(cmds[1:], func(a, b *cobra.Command) int {
		return strings.Compare(a.CommandPath(), b.CommandPath())
	})

	pages := make([]Page, 0, len(cmds))
	for _, c := range cmds {
		pages = append(pages, Page{
			Title:    c.CommandPath(),
			Short:    c.Short,
			Path:     pagePath(root, c),
			Markdown: commandMarkdown(root, c),
		})
	}
	return pages
}

func pagePath(root, c *cobra.Command) string {
	if c == root {
		return "index.html"
	}
	return stringutil.FileName(c.CommandPath(), ".html", "command")
}

func commandMarkdown(root, c *cobra.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.CommandPath())
	if c.Short != "" {
		fmt.Fprintf(&b, "%s\n\n", c.Short)
	}
	if c.Long != "" {
		fmt.Fprintf(&b, "%s\n\n", c.Long)
	}

	if c.Runnable() {
		fmt.Fprintf(&b, "## Usage\n\n```sh\n%s\n```\n\n", c.UseLine())
	}
	if c.Example != "" {
		fmt.Fprintf(&b, "## Examples\n\n```sh\n%s\n```\n\n", dedent(c.Example))
	}

	if subs := visibleSubcommands(c); len(subs) > 0 {
		b.WriteString("## Commands\n\n| Command | Description |\n|---|---|\n")
		for _, sub := range subs {
			fmt.Fprintf(&b, "| [%s](%s) | %s |\n", sub.Name(), pagePath(root, sub), escapeCell(sub.Short))
		}
		b.WriteString("\n")
	}

	writeFlagTable(&b, "Flags", c.NonInheritedFlags())
	writeFlagTable(&b, "Global flags", c.InheritedFlags())

	return b.String()
}

func visibleSubcommands(c *cobra.Command) []*cobra.Command {
	var subs []*cobra.Command
	for _, sub := range c.Commands() {
		if sub.Hidden || sub.Name() == "help" {
			continue
		}
		subs = append(subs, sub)
	}
	return subs
}

func writeFlagTable(b *strings.Builder, heading string, flags *pflag.FlagSet) {
	var rows []string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		def := f.DefValue
		if def == "" || def == "false" {
			def = "-"
		}
		rows = append(rows, fmt.Sprintf("| `--%s` | %s | %s | %s |", f.Name, f.Value.Type(), escapeCell(def), escapeCell(f.Usage)))
	})
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(b, "## %s\n\n| Flag | Type | Default | Description |\n|---|---|---|---|\n", heading)
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// dedent strips the two space indent cobra examples carry.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, "  ")
	}
	return strings.Join(lines, "\n")
}
