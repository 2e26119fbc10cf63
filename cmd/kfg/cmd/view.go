package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/felpofo/kfg/internal/printer"
	"github.com/felpofo/kfg/internal/viewer"
)

var viewNoWatch bool

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Browse a kfg file interactively",
	Long: `Opens a terminal viewer showing the parsed tree of a file. The view
follows changes to the file unless --no-watch is given.

Keys:
  t           toggle tree / filtered tokens
  Tab         cycle tree, tokens, raw tokens
  r           reload
  g / G       top / bottom
  PgUp/PgDn   scroll
  q, Ctrl+C   quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().BoolVar(&viewNoWatch, "no-watch", false, "do not reload when the file changes")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg := viewer.Config{
		Path:   args[0],
		Engine: app.engine,
		Printer: printer.New(printer.Options{
			Output: os.Stdout,
			Color:  app.settings.Output.Color,
			Indent: app.settings.Output.Indent,
		}),
	}

	return viewer.Run(cmd.Context(), cfg, !viewNoWatch, app.settings.Watch.Debounce.Duration)
}
