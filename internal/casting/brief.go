package casting

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive lower/upper bound for one measurement field, in
// inches. Either bound may be absent; both absent means the field is
// informational only and never scored.
type Range struct {
	Min *float64 `yaml:"min" json:"min"`
	Max *float64 `yaml:"max" json:"max"`
}

// Constrained reports whether the range actually restricts anything.
func (r Range) Constrained() bool {
	return r.Min != nil || r.Max != nil
}

// Requirement pairs a measurement field key with its target range.
type Requirement struct {
	Key   string `json:"key"`
	Range Range  `json:"range"`
}

// Requirements keeps the brief's fields in the order they were authored.
// That order drives the per-field detail output, so it is preserved through
// YAML decoding instead of collapsing into a map.
type Requirements []Requirement

// UnmarshalYAML decodes a YAML mapping of field key to range, keeping the
// mapping's key order.
func (r *Requirements) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("requirements must be a mapping of field to range")
	}

	reqs := make(Requirements, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("decode requirement key: %w", err)
		}

		var rng Range
		if err := node.Content[i+1].Decode(&rng); err != nil {
			return fmt.Errorf("decode range for %q: %w", key, err)
		}

		reqs = append(reqs, Requirement{Key: key, Range: rng})
	}

	*r = reqs
	return nil
}

// Brief describes the ideal candidate for a role: a gender category plus
// per-field measurement requirements.
type Brief struct {
	Gender       Gender       `json:"gender"`
	Requirements Requirements `json:"requirements"`
}

// DefaultBrief is the empty brief used before one has been configured:
// gender women, no requirements. With no constrained fields every
// gender-matching talent scores 1.
func DefaultBrief() *Brief {
	return &Brief{Gender: GenderWomen}
}
