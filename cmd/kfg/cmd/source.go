package cmd

import (
	"io"
	"os"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg/ast"
	"github.com/felpofo/kfg/foundation/utils/filex"
	"github.com/felpofo/kfg/internal/printer"
)

// readSource reads a kfg file, wrapping failures as KFG_IO
func readSource(path string) ([]byte, error) {
	app.logger.Info("Reading", mdwlog.String("path", path))

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read kfg file").
			WithCode(mdwerror.CodeKFGIO).
			WithOperation("kfg.Read").
			WithDetail("path", path)
	}
	app.logger.Debug("Read", mdwlog.String("size", filex.FormatSize(int64(len(src)))))
	return src, nil
}

// parseSource runs the pipeline over src, logging each stage and dumping
// the token streams at debug level
func parseSource(path string, src []byte) (*ast.Document, error) {
	app.logger.Info("Tokenizing", mdwlog.String("path", path))
	if app.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		plain := printer.New(printer.Options{Output: io.Discard, Color: printer.ColorNever})
		raw, filtered := app.engine.Tokens(src)
		app.logger.Debug("Tokens\n"+plain.Tokens(raw), mdwlog.Int("count", len(raw)))
		app.logger.Info("Filtering", mdwlog.String("path", path))
		app.logger.Debug("Filtered tokens\n"+plain.Tokens(filtered), mdwlog.Int("count", len(filtered)))
	} else {
		app.logger.Info("Filtering", mdwlog.String("path", path))
	}

	app.logger.Info("Parsing", mdwlog.String("path", path))
	doc, err := app.engine.Parse(src)
	if err != nil {
		return nil, err
	}
	app.logger.Debug("Parsed", mdwlog.Int("keys", doc.Len()), mdwlog.Int("assignments", doc.Assignments()))
	return doc, nil
}

// loadDocument reads and parses path. Syntax errors are wrapped as
// KFG_SYNTAX and keep the source for diagnostics.
func loadDocument(path string) (*ast.Document, []byte, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, nil, err
	}
	doc, err := parseSource(path, src)
	if err != nil {
		return nil, src, mdwerror.Wrap(err, "failed to parse "+path).
			WithCode(mdwerror.CodeKFGSyntax).
			WithOperation("kfg.Parse").
			WithDetail("path", path)
	}
	return doc, src, nil
}
