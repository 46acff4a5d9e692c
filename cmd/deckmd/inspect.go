package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/google/renameio"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gubarz/deckmd/internal/logging"
	"github.com/gubarz/deckmd/internal/parser"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print the parsed structure of a deck",
	Long: `Parse a deck and print its structure instead of presenting it.

The text format lists header and slide counts; each -v adds detail.
The yaml format describes every line with its text, bits and flags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringP("format", "f", "text", "Output format: text, yaml")
	inspectCmd.Flags().CountP("verbose", "v", "Add per-line detail to the text format")
	inspectCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetCount("verbose")
	out, _ := cmd.Flags().GetString("out")

	deck, err := loadDeck(cmd.Context(), args)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeInspect(&buf, deck, format, verbose+1); err != nil {
		return err
	}

	if out == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := renameio.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logging.FromContext(cmd.Context()).Info("report written",
		logging.FieldOutput, out,
		logging.FieldFormat, format,
	)
	return nil
}

// writeInspect writes the deck report in the given format.
// level is the WriteDebug tier used by the text format.
func writeInspect(w io.Writer, deck *parser.Deck, format string, level int) error {
	switch format {
	case "text", "":
		return parser.WriteDebug(w, deck, level)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(parser.NewReport(deck)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (supported: text, yaml)", format)
	}
}
