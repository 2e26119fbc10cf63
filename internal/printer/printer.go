// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     printer
// Description: Colored rendering of documents, tokens and check results
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/felpofo/kfg/foundation/kfg/ast"
	"github.com/felpofo/kfg/foundation/kfg/token"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options configures a Printer
type Options struct {
	// Output is inspected for terminal capabilities in auto mode
	Output io.Writer
	// Color is auto, always or never
	Color string
	// Indent is the number of spaces per nesting level
	Indent int
}

// Printer renders kfg values for the terminal
type Printer struct {
	styles    styles
	color     bool
	formatter ast.Formatter
}

// New creates a printer
func New(opts Options) *Printer {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	renderer := lipgloss.NewRenderer(out)
	color := false
	switch strings.ToLower(opts.Color) {
	case ColorNever:
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
		color = true
	default:
		color = renderer.ColorProfile() != termenv.Ascii
	}

	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}

	p := &Printer{
		styles: newStyles(renderer),
		color:  color,
	}
	p.formatter = ast.Formatter{Indent: strings.Repeat(" ", indent)}
	if color {
		p.formatter.Styler = treeStyler{p.styles}
	}
	return p
}

// Colored reports whether output carries ANSI styling
func (p *Printer) Colored() bool {
	return p.color
}

// Document renders one "key = value" line per top-level key
func (p *Printer) Document(doc *ast.Document) string {
	return p.formatter.Document(doc)
}

// Inline renders the whole document on one line
func (p *Printer) Inline(doc *ast.Document) string {
	return p.formatter.Inline(doc.Root) + "\n"
}

// Node renders a single value over several lines
func (p *Printer) Node(n ast.Node) string {
	return p.formatter.Indented(n)
}

// Tokens renders one token per line as position, kind and text
func (p *Printer) Tokens(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		pos := fmt.Sprintf("%-10s", tok.Position.String())
		kind := fmt.Sprintf("%-13s", tok.Kind.String())
		b.WriteString(p.render(p.styles.pos, pos))
		b.WriteString(p.render(p.styles.kind, kind))
		if tok.Kind == token.Symbol {
			b.WriteString(p.render(p.styles.str, fmt.Sprintf("%q", tok.Text)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// OK renders a success line
func (p *Printer) OK(subject string) string {
	return p.render(p.styles.ok, "OK") + "   " + subject + "\n"
}

// Error renders a one-line error message
func (p *Printer) Error(message string) string {
	return p.render(p.styles.failure, "error:") + " " + message + "\n"
}

// Failure renders a failure line followed by indented detail lines
func (p *Printer) Failure(subject, detail string) string {
	var b strings.Builder
	b.WriteString(p.render(p.styles.failure, "FAIL") + " " + subject + "\n")
	for _, line := range strings.Split(detail, "\n") {
		b.WriteString("     " + line + "\n")
	}
	return b.String()
}

func (p *Printer) render(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}

// treeStyler colors values by kind
type treeStyler struct {
	st styles
}

func (t treeStyler) Value(kind ast.Kind, text string) string {
	switch kind {
	case ast.KindString:
		return t.st.str.Render(text)
	case ast.KindInteger, ast.KindFloat:
		return t.st.number.Render(text)
	case ast.KindBool:
		return t.st.boolean.Render(text)
	case ast.KindNull:
		return t.st.null.Render(text)
	default:
		return text
	}
}

func (t treeStyler) Key(name string) string {
	return t.st.key.Render(name)
}

func (t treeStyler) Punct(text string) string {
	return t.st.punct.Render(text)
}
