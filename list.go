package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"stickies/internal/board"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// noteRecord is a note as printed by list.
type noteRecord struct {
	ID      string  `json:"id" yaml:"id"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	ZIndex  int     `json:"zIndex" yaml:"zIndex"`
	Content string  `json:"content" yaml:"content"`
}

func newListCmd(app *appContext) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the stored notes",
		Long: `List prints the saved notes bottom to top.

Example:
  stickies list
  stickies list --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.loadNotes(cmd)
			if err != nil {
				return err
			}
			return writeNotes(cmd.OutOrStdout(), paintOrder(notes), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}

func writeNotes(w io.Writer, notes []board.Note, format string) error {
	records := make([]noteRecord, len(notes))
	for i, n := range notes {
		records[i] = noteRecord{
			ID:      n.ID,
			X:       n.X,
			Y:       n.Y,
			Width:   n.Width,
			Height:  n.Height,
			ZIndex:  n.ZIndex,
			Content: n.Content,
		}
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tX\tY\tSIZE\tZ\tCONTENT")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0fx%.0f\t%d\t%s\n",
				r.ID, r.X, r.Y, r.Width, r.Height, r.ZIndex, summarize(r.Content, 40))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
	return nil
}

// summarize flattens content to one line of at most n runes.
func summarize(content string, n int) string {
	line := strings.Join(strings.Fields(content), " ")
	runes := []rune(line)
	if len(runes) <= n {
		return line
	}
	return string(runes[:n-1]) + "…"
}
