package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felpofo/kfg/foundation/kfg"
)

var parseInline bool

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the parsed tree of a kfg file",
	Long: `Parses a kfg file and prints the resulting tree.

Top-level keys are printed one per line as "key = value", with dicts
spread over several lines. --inline prints the whole document on one
line instead.

Examples:
  kfg parse app.kfg
  kfg parse --inline app.kfg
  kfg parse -v app.kfg   # stage logs and token dumps on stderr`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseInline, "inline", false, "print the document on one line")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, src, err := loadDocument(path)
	if err != nil {
		if src != nil {
			fmt.Fprint(cmd.ErrOrStderr(), app.printer.Failure(path, kfg.Diagnose(src, err)))
			return reported(err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if parseInline || app.settings.Output.Format == "inline" {
		fmt.Fprint(out, app.printer.Inline(doc))
		return nil
	}
	fmt.Fprint(out, app.printer.Document(doc))
	return nil
}
