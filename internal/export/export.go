// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     export
// Description: Converts parsed documents to JSON, YAML and TOML
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
	"github.com/felpofo/kfg/foundation/kfg/ast"
)

// Format is an export target
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatSQLite Format = "sqlite"
)

// Formats lists every supported target
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatSQLite}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatTOML, FormatSQLite:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "db", "sqlite3":
		return FormatSQLite, nil
	default:
		return "", mdwerror.Newf("unknown export format %q", name).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("export.ParseFormat")
	}
}

// IsText reports whether the format is written to a stream
func (f Format) IsText() bool {
	return f != FormatSQLite
}

// Write encodes doc to w in a text format
func Write(w io.Writer, doc *ast.Document, format Format) error {
	var err error
	switch format {
	case FormatJSON:
		err = writeJSON(w, doc)
	case FormatYAML:
		err = writeYAML(w, doc)
	case FormatTOML:
		err = writeTOML(w, doc)
	default:
		return mdwerror.Newf("%s is not a text format", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("export.Write")
	}

	if err != nil {
		return mdwerror.Wrap(err, "export failed").
			WithCode(mdwerror.CodeKFGExport).
			WithOperation("export.Write").
			WithDetail("format", string(format))
	}
	return nil
}

// writeJSON relies on encoding/json sorting map keys
func writeJSON(w io.Writer, doc *ast.Document) error {
	var bad string
	ast.Walk(doc.Root, func(path string, n ast.Node) bool {
		if bad != "" {
			return false
		}
		if f, ok := n.(ast.Float); ok && (math.IsInf(float64(f), 0) || math.IsNaN(float64(f))) {
			bad = path
		}
		return bad == ""
	})
	if bad != "" {
		return fmt.Errorf("%s: JSON cannot represent infinite or NaN numbers", bad)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc.ToNative())
}

func writeYAML(w io.Writer, doc *ast.Document) error {
	root := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{yamlNode(doc.Root)},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

// yamlNode builds the node tree by hand so keys keep their sorted order and
// floats keep a fractional part
func yamlNode(n ast.Node) *yaml.Node {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}

	switch x := n.(type) {
	case ast.String:
		return scalar("!!str", string(x))
	case ast.Integer:
		return scalar("!!int", strconv.FormatInt(int64(x), 10))
	case ast.Float:
		f := float64(x)
		switch {
		case math.IsNaN(f):
			return scalar("!!float", ".nan")
		case math.IsInf(f, 1):
			return scalar("!!float", ".inf")
		case math.IsInf(f, -1):
			return scalar("!!float", "-.inf")
		}
		return scalar("!!float", ast.Formatter{}.Scalar(x))
	case ast.Bool:
		return scalar("!!bool", strconv.FormatBool(bool(x)))
	case ast.Null:
		return scalar("!!null", "null")
	case ast.Array:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(x) == 0 || isScalars(x) {
			seq.Style = yaml.FlowStyle
		}
		for _, item := range x {
			seq.Content = append(seq.Content, yamlNode(item))
		}
		return seq
	case ast.Dict:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if len(x) == 0 {
			m.Style = yaml.FlowStyle
		}
		for _, k := range x.Keys() {
			m.Content = append(m.Content, scalar("!!str", k), yamlNode(x[k]))
		}
		return m
	default:
		return scalar("!!null", "null")
	}
}

func isScalars(a ast.Array) bool {
	for _, item := range a {
		if !item.Kind().IsScalar() {
			return false
		}
	}
	return true
}

func writeTOML(w io.Writer, doc *ast.Document) error {
	data, err := tomlValue("", doc.Root)
	if err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(data)
}

// tomlValue converts n to plain values. TOML has no null, so null dict
// entries are left out and null array elements are an error.
func tomlValue(path string, n ast.Node) (interface{}, error) {
	switch x := n.(type) {
	case ast.Dict:
		out := make(map[string]interface{}, len(x))
		for _, k := range x.Keys() {
			if x[k].Kind() == ast.KindNull {
				continue
			}
			v, err := tomlValue(joinPath(path, k), x[k])
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case ast.Array:
		out := make([]interface{}, len(x))
		for i, item := range x {
			if item.Kind() == ast.KindNull {
				return nil, fmt.Errorf("%s[%d]: TOML arrays cannot hold null", path, i)
			}
			v, err := tomlValue(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return ast.ToNative(n), nil
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
