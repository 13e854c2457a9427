package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"gopkg.in/yaml.v3"
)

// Listing formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var outputFlag = StringFlag{Name: "output", Usage: "listing format: text, json or yaml", Default: outputText}

// writeDates writes dates one per line, or as a JSON or YAML list of integers.
func writeDates(w io.Writer, cfg config.Config, dates []decimaldate.DecimalDate, output string) error {
	switch output {
	case outputText, "":
		for _, d := range dates {
			if _, err := fmt.Fprintln(w, cfg.Render(d)); err != nil {
				return err
			}
		}
		return nil
	case outputJSON:
		if dates == nil {
			dates = []decimaldate.DecimalDate{}
		}
		data, err := json.Marshal(dates)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(dates); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output %q (valid: %s, %s, %s)", output, outputText, outputJSON, outputYAML)
}
