// File: document.go
// Title: kfg Document and Deep Merge
// Description: The top-level mapping produced by a parse and the recursive
//              merge that places scope-path declarations into it.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"strconv"
	"strings"
)

// Document is the result of a successful parse
type Document struct {
	Root Dict
}

// NewDocument returns an empty document
func NewDocument() *Document {
	return &Document{Root: Dict{}}
}

// Get returns a top-level value
func (d *Document) Get(key string) (Node, bool) {
	return d.Root.Get(key)
}

// Len returns the number of top-level keys
func (d *Document) Len() int {
	return len(d.Root)
}

// Lookup follows path through nested dicts
func (d *Document) Lookup(path ...string) (Node, bool) {
	if len(path) == 0 {
		return d.Root, true
	}
	var current Node = d.Root
	for _, segment := range path {
		dict, ok := current.(Dict)
		if !ok {
			return nil, false
		}
		if current, ok = dict[segment]; !ok {
			return nil, false
		}
	}
	return current, true
}

// Upsert binds value at path, descending into existing dicts
func (d *Document) Upsert(path []string, value Node) {
	d.Root = Merge(d.Root, path, value)
}

// Assignments counts every key of the document, including keys of nested
// dicts
func (d *Document) Assignments() int {
	return countKeys(d.Root)
}

func countKeys(n Node) int {
	dict, ok := n.(Dict)
	if !ok {
		return 0
	}
	count := len(dict)
	for _, child := range dict {
		count += countKeys(child)
	}
	return count
}

// ToNative converts the document to map[string]interface{}
func (d *Document) ToNative() map[string]interface{} {
	return ToNative(d.Root).(map[string]interface{})
}

// Equal compares two documents structurally
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return Equal(d.Root, other.Root)
}

// BuildChain wraps value in one single-entry Dict per path segment, innermost
// last: BuildChain([b c], v) is {b: {c: v}}. An empty path returns value.
func BuildChain(path []string, value Node) Node {
	for i := len(path) - 1; i >= 0; i-- {
		value = Dict{path[i]: value}
	}
	return value
}

// Merge binds value at path inside existing and returns the result. Each
// segment that already holds a Dict is descended into, so sibling keys are
// kept. The first segment that is missing or holds a non-Dict receives the
// rest of the path as a fresh chain. The final segment always takes value.
// A nil existing dict is allocated.
func Merge(existing Dict, path []string, value Node) Dict {
	if existing == nil {
		existing = Dict{}
	}
	if len(path) == 0 {
		return existing
	}

	head, rest := path[0], path[1:]
	if len(rest) == 0 {
		existing[head] = value
		return existing
	}

	if child, ok := existing[head].(Dict); ok {
		existing[head] = Merge(child, rest, value)
		return existing
	}

	existing[head] = BuildChain(rest, value)
	return existing
}

// Entry is a leaf of a flattened tree
type Entry struct {
	Path string
	Node Node
}

// Flatten lists every scalar, empty array and empty dict below root with its
// path, in Walk order
func Flatten(root Node) []Entry {
	var entries []Entry
	Walk(root, func(path string, n Node) bool {
		switch x := n.(type) {
		case Array:
			if len(x) == 0 && path != "" {
				entries = append(entries, Entry{Path: path, Node: x})
			}
		case Dict:
			if len(x) == 0 && path != "" {
				entries = append(entries, Entry{Path: path, Node: x})
			}
		default:
			entries = append(entries, Entry{Path: path, Node: n})
		}
		return true
	})
	return entries
}

// SplitPath splits a dotted lookup path. Empty input yields no segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func keyPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
