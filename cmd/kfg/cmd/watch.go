package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felpofo/kfg/foundation/kfg"
	"github.com/felpofo/kfg/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-parse a kfg file whenever it changes",
	Long: `Parses a file, prints the result and keeps watching it. Every burst
of changes is parsed again once the file has been quiet for the
debounce interval ([watch] debounce in the settings, default 200ms).

Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := watcher.New(watcher.Config{
		Path:     args[0],
		Debounce: app.settings.Watch.Debounce.Duration,
		Engine:   app.engine,
		Logger:   app.logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchLoop(ctx, cmd, w)
}

func watchLoop(ctx context.Context, cmd *cobra.Command, w *watcher.Watcher) error {
	out := cmd.OutOrStdout()
	subject := w.Path()

	return w.Run(ctx, func(r watcher.Result) {
		stamp := r.At.Format("15:04:05")
		if r.Err != nil {
			fmt.Fprint(out, app.printer.Failure(stamp+" "+subject, kfg.Diagnose(r.Src, r.Err)))
			return
		}
		fmt.Fprint(out, app.printer.OK(fmt.Sprintf("%s %s (%d assignments)", stamp, subject, r.Doc.Assignments())))
		fmt.Fprint(out, app.printer.Document(r.Doc))
	})
}
