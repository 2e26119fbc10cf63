// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     watcher
// Description: Re-parses a kfg file whenever it changes on disk
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	mdwlog "github.com/felpofo/kfg/foundation/core/log"
	"github.com/felpofo/kfg/foundation/kfg"
	"github.com/felpofo/kfg/foundation/kfg/ast"
	"github.com/felpofo/kfg/pkg/core/cache"
)

// DefaultDebounce is the quiet period used when Config.Debounce is zero
const DefaultDebounce = 200 * time.Millisecond

// Result is the outcome of one parse
type Result struct {
	Path string
	Doc  *ast.Document
	Src  []byte
	Err  error
	At   time.Time
}

// Config configures a Watcher
type Config struct {
	Path     string
	Debounce time.Duration
	Engine   *kfg.Engine
	Logger   *mdwlog.Logger
}

// Watcher parses a file once and again after every burst of changes that
// alters its content
type Watcher struct {
	path     string
	debounce time.Duration
	engine   *kfg.Engine
	logger   *mdwlog.Logger
	docs     *cache.DocumentCache
	lastKey  string
}

// New creates a watcher for cfg.Path
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("watcher.New")
	}

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to resolve path").
			WithCode(mdwerror.CodeKFGWatch).
			WithOperation("watcher.New").
			WithDetail("path", cfg.Path)
	}

	w := &Watcher{
		path:     path,
		debounce: cfg.Debounce,
		engine:   cfg.Engine,
		logger:   cfg.Logger,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.engine == nil {
		w.engine = kfg.NewEngine(kfg.Options{Logger: cfg.Logger})
	}
	if w.logger == nil {
		w.logger = mdwlog.Discard()
	}
	w.docs = cache.NewDocumentCache(cache.Config{MaxItems: 32}, w.engine.Parse)
	return w, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Run calls handle with the current parse result and then once per burst of
// file events. It blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context, handle func(Result)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeKFGWatch).
			WithOperation("watcher.Run")
	}
	defer fw.Close()
	defer w.docs.Close()

	// editors often replace the file, so watch its directory
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeKFGWatch).
			WithOperation("watcher.Run").
			WithDetail("dir", dir)
	}

	w.logger.Info("Started watching", mdwlog.String("path", w.path))
	handle(w.parse())

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopped watching", mdwlog.String("path", w.path))
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			w.logger.Debug("File event", mdwlog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			last := w.lastKey
			r := w.parse()
			if last != "" && w.lastKey == last {
				w.logger.Debug("Content unchanged", mdwlog.String("path", w.path))
				continue
			}
			handle(r)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("Watcher error", err)
		}
	}
}

func (w *Watcher) parse() Result {
	result := Result{Path: w.path, At: time.Now()}

	doc, src, err := w.read()
	result.Doc, result.Src, result.Err = doc, src, err
	if src != nil {
		w.lastKey = cache.Key(src)
	} else {
		w.lastKey = ""
	}
	if err != nil {
		w.logger.Debug("Parse failed", mdwlog.Err(err))
	} else {
		w.logger.Debug("Parsed", mdwlog.Int("assignments", doc.Assignments()))
	}
	return result
}

func (w *Watcher) read() (*ast.Document, []byte, error) {
	src, err := readFile(w.path)
	if err != nil {
		return nil, nil, err
	}
	doc, err := w.docs.Parse(src)
	return doc, src, err
}
