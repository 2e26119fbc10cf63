// Package ast defines the tree produced by the kfg parser.
//
// Package: ast
// Title: kfg Abstract Syntax Tree
// Description: Value nodes (String, Integer, Float, Bool, Null, Array, Dict),
//              the top-level Document, structural equality, the deep merge
//              used for scope paths, visitors and conversion helpers.
// Author: felpofo
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Nodes are plain Go values. Arrays and Dicts are slices and maps of Node, so
// a tree can be built with composite literals:
//
//   ast.Dict{
//     "name":  ast.String("kfg"),
//     "flags": ast.Array{ast.Bool(true), ast.Null{}},
//   }
package ast
