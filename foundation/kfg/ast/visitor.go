// File: visitor.go
// Title: kfg AST Visitors
// Description: Visitor interface, an embeddable base visitor and the native
//              Go conversion built on it.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// Visitor is implemented by types that process every node variant
type Visitor interface {
	VisitString(n String) interface{}
	VisitInteger(n Integer) interface{}
	VisitFloat(n Float) interface{}
	VisitBool(n Bool) interface{}
	VisitNull(n Null) interface{}
	VisitArray(n Array) interface{}
	VisitDict(n Dict) interface{}
}

// BaseVisitor returns nil for every node.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitString(String) interface{}   { return nil }
func (BaseVisitor) VisitInteger(Integer) interface{} { return nil }
func (BaseVisitor) VisitFloat(Float) interface{}     { return nil }
func (BaseVisitor) VisitBool(Bool) interface{}       { return nil }
func (BaseVisitor) VisitNull(Null) interface{}       { return nil }
func (BaseVisitor) VisitArray(Array) interface{}     { return nil }
func (BaseVisitor) VisitDict(Dict) interface{}       { return nil }

type nativeVisitor struct{}

func (nativeVisitor) VisitString(n String) interface{}   { return string(n) }
func (nativeVisitor) VisitInteger(n Integer) interface{} { return int64(n) }
func (nativeVisitor) VisitFloat(n Float) interface{}     { return float64(n) }
func (nativeVisitor) VisitBool(n Bool) interface{}       { return bool(n) }
func (nativeVisitor) VisitNull(Null) interface{}         { return nil }

func (v nativeVisitor) VisitArray(n Array) interface{} {
	out := make([]interface{}, len(n))
	for i, item := range n {
		out[i] = item.Accept(v)
	}
	return out
}

func (v nativeVisitor) VisitDict(n Dict) interface{} {
	out := make(map[string]interface{}, len(n))
	for k, item := range n {
		out[k] = item.Accept(v)
	}
	return out
}

// ToNative converts a node to plain Go values: string, int64, float64, bool,
// nil, []interface{} and map[string]interface{}
func ToNative(n Node) interface{} {
	if n == nil {
		return nil
	}
	return n.Accept(nativeVisitor{})
}

// Walk calls fn for n and every descendant in depth-first order, dict
// entries in key order. Paths use dots for dict keys and [i] for array
// elements. Returning false from fn skips the children of that node.
func Walk(n Node, fn func(path string, n Node) bool) {
	walk("", n, fn)
}

func walk(path string, n Node, fn func(string, Node) bool) {
	if !fn(path, n) {
		return
	}
	switch x := n.(type) {
	case Array:
		for i, item := range x {
			walk(indexPath(path, i), item, fn)
		}
	case Dict:
		for _, k := range x.Keys() {
			walk(keyPath(path, k), x[k], fn)
		}
	}
}
