package roster

import (
	"fmt"
	"os"

	"github.com/castingdesk/castmatch/internal/casting"

	"gopkg.in/yaml.v3"
)

// Roster is the talent list supplied to the engine.
type Roster struct {
	Items []*casting.Talent
}

func (r *Roster) Len() int {
	return len(r.Items)
}

func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.Items))
	for _, talent := range r.Items {
		names = append(names, talent.Name)
	}
	return names
}

func (r *Roster) FindByName(name string) *casting.Talent {
	for _, talent := range r.Items {
		if talent.Name == name {
			return talent
		}
	}
	return nil
}

// Load reads a roster YAML file. Measurement values keep their original
// shape (number or free-form text); the engine's parser sorts them out later.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var wire struct {
		Talent []*casting.Talent `yaml:"talent"`
	}
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parsing roster file %q: %w", path, err)
	}

	for i, talent := range wire.Talent {
		if talent == nil || talent.Name == "" {
			return nil, fmt.Errorf("roster file %q: talent entry %d has no name", path, i)
		}
	}

	return &Roster{Items: wire.Talent}, nil
}
