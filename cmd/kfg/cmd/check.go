package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate kfg files",
	Long: `Parses every file and reports OK or the first error with its
position and a caret under the offending token.

The exit status is non-zero when any file fails: 2 for syntax errors,
3 when a file cannot be read.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "only report failures")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var (
		failed int
		code   = mdwerror.CodeKFGIO
	)
	for _, path := range args {
		_, src, err := loadDocument(path)
		if err == nil {
			if !checkQuiet {
				fmt.Fprint(out, app.printer.OK(path))
			}
			continue
		}

		failed++
		if kfg.IsSyntaxError(err) {
			code = mdwerror.CodeKFGSyntax
			fmt.Fprint(out, app.printer.Failure(path, kfg.Diagnose(src, err)))
		} else {
			fmt.Fprint(out, app.printer.Failure(path, err.Error()))
		}
	}

	app.logger.Debug("Check finished", mdwlog.Int("files", len(args)), mdwlog.Int("failed", failed))
	if failed == 0 {
		return nil
	}
	return reported(mdwerror.Newf("%d of %d files failed", failed, len(args)).
		WithCode(code).
		WithOperation("kfg.check"))
}
