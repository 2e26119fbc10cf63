// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     viewer
// Description: Bubbletea model that browses a parsed kfg file
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	"github.com/felpofo/kfg/foundation/kfg"
	"github.com/felpofo/kfg/foundation/kfg/ast"
	"github.com/felpofo/kfg/internal/printer"
	"github.com/felpofo/kfg/internal/watcher"
)

// Mode selects what the viewport shows
type Mode int

const (
	ModeTree Mode = iota
	ModeTokens
	ModeRawTokens
)

func (m Mode) String() string {
	switch m {
	case ModeTokens:
		return "tokens"
	case ModeRawTokens:
		return "raw tokens"
	default:
		return "tree"
	}
}

// Config holds viewer configuration
type Config struct {
	Path    string
	Engine  *kfg.Engine
	Printer *printer.Printer
	// Updates delivers re-parses from a running watcher; nil disables live reload
	Updates <-chan watcher.Result

	// WatchErrors receives the watcher's exit error before Updates closes
	WatchErrors <-chan error
}

// Model is the Bubbletea model for the viewer
type Model struct {
	width   int
	height  int
	ready   bool
	loading bool
	mode    Mode

	viewport viewport.Model
	spinner  spinner.Model

	src      []byte
	doc      *ast.Document
	err      error
	loadedAt time.Time
	reloads  int
	live     bool
	watchErr error

	path    string
	engine  *kfg.Engine
	printer *printer.Printer
	updates <-chan watcher.Result
	errs    <-chan error
}

// New creates a viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	engine := cfg.Engine
	if engine == nil {
		engine = kfg.NewEngine(kfg.Options{})
	}
	p := cfg.Printer
	if p == nil {
		p = printer.New(printer.Options{})
	}

	return Model{
		loading: true,
		spinner: sp,
		path:    cfg.Path,
		engine:  engine,
		printer: p,
		updates: cfg.Updates,
		errs:    cfg.WatchErrors,
		live:    cfg.Updates != nil,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.updates != nil {
		cmds = append(cmds, m.waitForUpdate)
	} else {
		cmds = append(cmds, m.loadFile)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 4
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case docLoadedMsg:
		if !m.loading {
			m.reloads++
		}
		m.loading = false
		m.src = msg.src
		m.doc = msg.doc
		m.err = msg.err
		m.loadedAt = msg.at
		m.updateViewportContent()
		if m.updates != nil {
			cmds = append(cmds, m.waitForUpdate)
		}

	case watchClosedMsg:
		m.live = false
		m.updates = nil
		m.watchErr = msg.err
		if m.loading {
			cmds = append(cmds, m.loadFile)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.mode = (m.mode + 1) % 3
		m.updateViewportContent()
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		case "t":
			if m.mode == ModeTree {
				m.mode = ModeTokens
			} else {
				m.mode = ModeTree
			}
			m.updateViewportContent()
			m.viewport.GotoTop()
			return m, nil

		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadFile)

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading " + m.path + "..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(PanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// Mode returns the current display mode
func (m Model) Mode() Mode {
	return m.mode
}

// Content returns the text currently loaded into the viewport
func (m Model) Content() string {
	return m.content()
}

func (m Model) renderHeader() string {
	parts := []string{
		TitleStyle.Render("kfg"),
		PathStyle.Render(m.path),
		ModeStyle.Render(m.mode.String()),
	}
	if m.live {
		parts = append(parts, HelpDescStyle.Render("[live]"))
	}
	if m.watchErr != nil {
		parts = append(parts, StatusErrorStyle.Render("watch failed: "+errorSummary(m.watchErr)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderStatusBar() string {
	switch {
	case m.loading:
		return m.spinner.View() + " Parsing..."
	case m.err != nil:
		return StatusErrorStyle.Render("error: " + errorSummary(m.err))
	case m.doc != nil:
		status := fmt.Sprintf("%d keys, %d assignments", m.doc.Len(), m.doc.Assignments())
		if !m.loadedAt.IsZero() {
			status += "  parsed " + m.loadedAt.Format("15:04:05")
		}
		if m.reloads > 0 {
			status += fmt.Sprintf("  reloads %d", m.reloads)
		}
		return StatusOKStyle.Render(status)
	}
	return ""
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("t", "Tokens"),
		RenderKeyHint("tab", "Mode"),
		RenderKeyHint("r", "Reload"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return strings.Join(items, "  ")
}

func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	if m.src == nil && m.err == nil {
		return ""
	}

	switch m.mode {
	case ModeTokens, ModeRawTokens:
		raw, filtered := m.engine.Tokens(m.src)
		if m.mode == ModeRawTokens {
			return m.printer.Tokens(raw)
		}
		return m.printer.Tokens(filtered)
	}

	if m.err != nil {
		return kfg.Diagnose(m.src, m.err)
	}
	if m.doc.Len() == 0 {
		return HelpDescStyle.Render("(empty document)")
	}
	return m.printer.Document(m.doc)
}

func errorSummary(err error) string {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Message()
	}
	return err.Error()
}

func (m Model) loadFile() tea.Msg {
	src, err := os.ReadFile(m.path)
	if err != nil {
		return docLoadedMsg{
			err: mdwerror.Wrap(err, "failed to read kfg file").
				WithCode(mdwerror.CodeKFGIO).
				WithOperation("viewer.load").
				WithDetail("path", m.path),
			at: time.Now(),
		}
	}
	doc, err := m.engine.Parse(src)
	return docLoadedMsg{src: src, doc: doc, err: err, at: time.Now()}
}

func (m Model) waitForUpdate() tea.Msg {
	r, ok := <-m.updates
	if !ok {
		var err error
		select {
		case err = <-m.errs:
		default:
		}
		return watchClosedMsg{err: err}
	}
	return docLoadedMsg{src: r.Src, doc: r.Doc, err: r.Err, at: r.At}
}

// Run starts the viewer. With live set, a watcher feeds re-parses into the model
// until the program exits.
func Run(ctx context.Context, cfg Config, live bool, debounce time.Duration) error {
	if live {
		w, err := watcher.New(watcher.Config{Path: cfg.Path, Debounce: debounce, Engine: cfg.Engine})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		updates := make(chan watcher.Result, 1)
		errs := make(chan error, 1)
		done := make(chan struct{})
		go func() {
			defer close(done)
			errs <- w.Run(ctx, func(r watcher.Result) {
				select {
				case updates <- r:
				case <-ctx.Done():
				}
			})
			close(updates)
		}()
		cfg.Updates = updates
		cfg.WatchErrors = errs

		p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
		final, err := p.Run()
		cancel()
		<-done

		// the model may already have taken the error off the channel
		var werr error
		if fm, ok := final.(Model); ok {
			werr = fm.watchErr
		}
		select {
		case e := <-errs:
			werr = e
		default:
		}
		if werr != nil && err == nil {
			err = werr
		}
		return err
	}

	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
