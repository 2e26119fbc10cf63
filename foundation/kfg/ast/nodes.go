// File: nodes.go
// Title: kfg AST Nodes
// Description: Node interface and the seven value variants.
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
	"sort"
)

// Kind identifies the variant of a Node
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindNull
	KindArray
	KindDict
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// IsScalar reports whether the kind holds no child nodes
func (k Kind) IsScalar() bool {
	return k != KindArray && k != KindDict
}

// Node is a kfg value
type Node interface {
	Kind() Kind
	Accept(v Visitor) interface{}
}

// String is a quoted string value
type String string

// Integer is a signed 64-bit integer value
type Integer int64

// Float is a 64-bit floating point value
type Float float64

// Bool is a boolean value
type Bool bool

// Null is the null value
type Null struct{}

// Array is an ordered sequence of values
type Array []Node

// Dict maps names to values
type Dict map[string]Node

func (String) Kind() Kind  { return KindString }
func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }
func (Array) Kind() Kind   { return KindArray }
func (Dict) Kind() Kind    { return KindDict }

func (n String) Accept(v Visitor) interface{}  { return v.VisitString(n) }
func (n Integer) Accept(v Visitor) interface{} { return v.VisitInteger(n) }
func (n Float) Accept(v Visitor) interface{}   { return v.VisitFloat(n) }
func (n Bool) Accept(v Visitor) interface{}    { return v.VisitBool(n) }
func (n Null) Accept(v Visitor) interface{}    { return v.VisitNull(n) }
func (n Array) Accept(v Visitor) interface{}   { return v.VisitArray(n) }
func (n Dict) Accept(v Visitor) interface{}    { return v.VisitDict(n) }

// Keys returns the dict keys in sorted order
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under key
func (d Dict) Get(key string) (Node, bool) {
	n, ok := d[key]
	return n, ok
}

// Equal compares two nodes structurally. Variants never compare equal to
// each other, so String("1") != Integer(1). NaN floats are equal to each
// other.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case String:
		return x == b.(String)
	case Integer:
		return x == b.(Integer)
	case Float:
		y := b.(Float)
		return x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y)))
	case Bool:
		return x == b.(Bool)
	case Null:
		return true
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Dict:
		y := b.(Dict)
		if len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
