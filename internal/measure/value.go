package measure

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type valueKind int

const (
	kindAbsent valueKind = iota
	kindNumeric
	kindText
)

// Value is a raw measurement as entered by a human: a number, free-form
// text, or nothing at all. The zero Value is absent.
type Value struct {
	kind valueKind
	num  float64
	text string
}

// Number returns a numeric measurement value.
func Number(f float64) Value {
	return Value{kind: kindNumeric, num: f}
}

// Text returns a free-form text measurement value.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// Absent returns the empty measurement value.
func Absent() Value {
	return Value{}
}

// IsAbsent reports whether the value carries no data.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent
}

// Display returns the value as the user entered it, or an empty string when absent.
func (v Value) Display() string {
	switch v.kind {
	case kindNumeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindText:
		return v.text
	default:
		return ""
	}
}

// UnmarshalYAML decodes a scalar node, keeping numbers numeric and
// everything else as text. Null nodes become absent values.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("measurement value must be a scalar, got %s", nodeKindName(node.Kind))
	}

	switch node.Tag {
	case "!!null":
		*v = Value{}
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("decode numeric measurement: %w", err)
		}
		*v = Number(f)
	default:
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("decode text measurement: %w", err)
		}
		*v = Text(s)
	}

	return nil
}

// MarshalJSON renders the value in its original shape for result dumps.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindNumeric:
		return json.Marshal(v.num)
	case kindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
