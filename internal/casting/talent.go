package casting

import (
	"github.com/castingdesk/castmatch/internal/measure"
)

// Talent is one casting candidate as supplied by the roster: a name, a
// free-form gender string, and raw measurements keyed by field. The engine
// never mutates a talent.
type Talent struct {
	Name         string                   `yaml:"name" json:"name"`
	Gender       string                   `yaml:"gender" json:"gender"`
	Measurements map[string]measure.Value `yaml:"measurements" json:"measurements,omitempty"`
}

// Measurement returns the raw value recorded for a field, or an absent
// value when the field was never entered.
func (t *Talent) Measurement(key string) measure.Value {
	if t.Measurements == nil {
		return measure.Absent()
	}
	return t.Measurements[key]
}
