// File: format.go
// Title: kfg Tree Rendering
// Description: Inline and indented renderings of nodes and documents. A
//              Styler decorates the output, e.g. with terminal colors.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"math"
	"strconv"
	"strings"
)

// Styler decorates rendered text
type Styler interface {
	// Value styles the rendered text of a scalar node
	Value(kind Kind, text string) string
	// Key styles a dict or document key
	Key(name string) string
	// Punct styles brackets, braces, separators and "="
	Punct(text string) string
}

type plainStyler struct{}

func (plainStyler) Value(_ Kind, text string) string { return text }
func (plainStyler) Key(name string) string           { return name }
func (plainStyler) Punct(text string) string         { return text }

// Formatter renders trees
type Formatter struct {
	// Indent is repeated once per nesting level, two spaces when empty
	Indent string
	// Styler decorates the output, plain when nil
	Styler Styler
}

func (f Formatter) styler() Styler {
	if f.Styler == nil {
		return plainStyler{}
	}
	return f.Styler
}

func (f Formatter) indent(depth int) string {
	unit := f.Indent
	if unit == "" {
		unit = "  "
	}
	return strings.Repeat(unit, depth)
}

// Scalar renders a scalar node
func (f Formatter) Scalar(n Node) string {
	return f.styler().Value(n.Kind(), scalarText(n))
}

func scalarText(n Node) string {
	switch x := n.(type) {
	case String:
		return strconv.Quote(string(x))
	case Integer:
		return strconv.FormatInt(int64(x), 10)
	case Float:
		return formatFloat(float64(x))
	case Bool:
		return strconv.FormatBool(bool(x))
	case Null:
		return "null"
	default:
		return ""
	}
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Inline renders n on a single line
func (f Formatter) Inline(n Node) string {
	var b strings.Builder
	f.inline(&b, n)
	return b.String()
}

func (f Formatter) inline(b *strings.Builder, n Node) {
	s := f.styler()
	switch x := n.(type) {
	case Array:
		b.WriteString(s.Punct("["))
		for i, item := range x {
			if i > 0 {
				b.WriteString(s.Punct(", "))
			}
			f.inline(b, item)
		}
		b.WriteString(s.Punct("]"))
	case Dict:
		if len(x) == 0 {
			b.WriteString(s.Punct("{}"))
			return
		}
		b.WriteString(s.Punct("{ "))
		for i, k := range x.Keys() {
			if i > 0 {
				b.WriteString(s.Punct(", "))
			}
			b.WriteString(s.Key(k))
			b.WriteString(s.Punct(": "))
			f.inline(b, x[k])
		}
		b.WriteString(s.Punct(" }"))
	default:
		b.WriteString(f.Scalar(n))
	}
}

// Indented renders n over several lines. Dicts put one entry per line,
// arrays stay inline unless they contain arrays or dicts.
func (f Formatter) Indented(n Node) string {
	var b strings.Builder
	f.indented(&b, n, 0)
	return b.String()
}

func (f Formatter) indented(b *strings.Builder, n Node, depth int) {
	s := f.styler()
	switch x := n.(type) {
	case Array:
		if isFlat(x) {
			f.inline(b, x)
			return
		}
		b.WriteString(s.Punct("["))
		for _, item := range x {
			b.WriteString("\n" + f.indent(depth+1))
			f.indented(b, item, depth+1)
		}
		b.WriteString("\n" + f.indent(depth) + s.Punct("]"))
	case Dict:
		if len(x) == 0 {
			b.WriteString(s.Punct("{}"))
			return
		}
		b.WriteString(s.Punct("{"))
		for _, k := range x.Keys() {
			b.WriteString("\n" + f.indent(depth+1) + s.Key(k) + s.Punct(": "))
			f.indented(b, x[k], depth+1)
		}
		b.WriteString("\n" + f.indent(depth) + s.Punct("}"))
	default:
		b.WriteString(f.Scalar(n))
	}
}

func isFlat(a Array) bool {
	for _, item := range a {
		if !item.Kind().IsScalar() {
			return false
		}
	}
	return true
}

// Document renders one "key = value" line per top-level key
func (f Formatter) Document(d *Document) string {
	s := f.styler()
	var b strings.Builder
	for _, k := range d.Root.Keys() {
		b.WriteString(s.Key(k) + " " + s.Punct("=") + " ")
		f.indented(&b, d.Root[k], 0)
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the document with the plain indented layout
func (d *Document) String() string {
	return Formatter{}.Document(d)
}

// Inline renders the whole document on one line
func (d *Document) Inline() string {
	return Formatter{}.Inline(d.Root)
}
