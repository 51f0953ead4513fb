package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stickies/internal/board"
)

const (
	defaultExportCols = 80
	defaultExportRows = 24
)

// exportVisualTXT writes the board as it appears on screen, without styling
// or focus, to filename.
func exportVisualTXT(notes []board.Note, filename string, width, height int) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if width < 1 {
		width = defaultExportCols
	}
	if height < 1 {
		height = defaultExportRows
	}

	w := bufio.NewWriter(file)
	for _, line := range renderBoard(notes, width, height, "").Lines(false) {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	return w.Flush()
}

func newExportCmd(app *appContext) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:       "export png|txt FILE",
		Short:     "Render the stored board to an image or text file",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"png", "txt"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, filename := args[0], args[1]
			notes, err := app.loadNotes(cmd)
			if err != nil {
				return err
			}

			switch format {
			case "png":
				err = ExportToPNG(notes, filename)
			case "txt":
				err = exportVisualTXT(notes, filename, width, height)
			default:
				return fmt.Errorf("unknown export format %q (want png or txt)", format)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", filename, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s\n", len(notes), filename)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", defaultExportCols, "text export width in columns")
	cmd.Flags().IntVar(&height, "height", defaultExportRows, "text export height in rows")
	return cmd
}
