package roster

import (
	"fmt"
	"os"

	"github.com/castingdesk/castmatch/internal/casting"

	"gopkg.in/yaml.v3"
)

// LoadBrief reads a casting brief YAML file. The requirements mapping keeps
// its authored field order, and the gender string is normalized into a
// category on the way in.
func LoadBrief(path string) (*casting.Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading brief file: %w", err)
	}

	var wire struct {
		Gender       string               `yaml:"gender"`
		Requirements casting.Requirements `yaml:"requirements"`
	}
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parsing brief file %q: %w", path, err)
	}

	return &casting.Brief{
		Gender:       casting.NormalizeGender(wire.Gender),
		Requirements: wire.Requirements,
	}, nil
}
