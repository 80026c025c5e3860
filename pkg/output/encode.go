// Package output renders evaluated zov documents and parse trees for files
// and terminals.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/zov-lang/zov/pkg/errors"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatTOML, FormatXML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want json, yaml, toml or xml)", s)
}

// Encode serializes an evaluated document in the requested format.
func Encode(doc map[string]interface{}, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrEncode, "encode json")
		}
		return append(out, '\n'), nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrEncode, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrEncode, "encode yaml")
		}
		return buf.Bytes(), nil

	case FormatTOML:
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrEncode, "encode toml")
		}
		return out, nil

	case FormatXML:
		return encodeXML(doc)
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
}

func encodeXML(doc map[string]interface{}) ([]byte, error) {
	tree := etree.NewDocument()
	tree.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := tree.CreateElement("zov")
	appendXML(root, doc)
	tree.Indent(2)

	out, err := tree.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "encode xml")
	}
	return out, nil
}

func appendXML(parent *etree.Element, node map[string]interface{}) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		child := parent.CreateElement(key)
		switch v := node[key].(type) {
		case map[string]interface{}:
			appendXML(child, v)
		case []interface{}:
			for _, value := range v {
				elem := child.CreateElement("value")
				if value == nil {
					elem.CreateAttr("null", "true")
					continue
				}
				elem.SetText(fmt.Sprint(value))
			}
		}
	}
}
