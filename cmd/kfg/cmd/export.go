package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg"
	"github.com/felpofo/kfg/foundation/utils/filex"
	"github.com/felpofo/kfg/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Convert a kfg file to JSON, YAML, TOML or SQLite",
	Long: `Converts a kfg document to another format.

Formats:
  json    - indented JSON, keys sorted
  yaml    - block YAML, keys sorted
  toml    - TOML tables (null entries are skipped)
  sqlite  - one row per leaf value in table "entries" (requires --out)

Examples:
  kfg export app.kfg --format yaml
  kfg export app.kfg --format json --out app.json
  kfg export app.kfg --format sqlite --out kfg.db`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json, yaml, toml, sqlite)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	if !format.IsText() && exportOut == "" {
		return mdwerror.New("--out is required for sqlite export").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("kfg.export")
	}

	doc, src, err := loadDocument(path)
	if err != nil {
		if src != nil {
			fmt.Fprint(cmd.ErrOrStderr(), app.printer.Failure(path, kfg.Diagnose(src, err)))
			return reported(err)
		}
		return err
	}

	if !format.IsText() {
		n, err := export.ToSQLite(cmd.Context(), exportOut, path, doc)
		if err != nil {
			return err
		}
		app.logger.Info("Exported", mdwlog.String("out", exportOut), mdwlog.Int("rows", n))
		fmt.Fprint(cmd.OutOrStdout(), app.printer.OK(fmt.Sprintf("%s -> %s (%d rows)", path, exportOut, n)))
		return nil
	}

	if exportOut == "" {
		return export.Write(cmd.OutOrStdout(), doc, format)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, doc, format); err != nil {
		return err
	}
	if err := filex.WriteAtomic(exportOut, buf.Bytes(), 0644); err != nil {
		return mdwerror.Wrap(err, "failed to write export").
			WithCode(mdwerror.CodeKFGExport).
			WithOperation("kfg.export").
			WithDetail("out", exportOut)
	}
	app.logger.Info("Exported", mdwlog.String("out", exportOut), mdwlog.String("format", string(format)))
	return nil
}
