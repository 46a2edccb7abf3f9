package shortlist

import (
	"encoding/json"
	"os"
	"time"
)

// ExcludedTalents is the persistent exclude list: talent the user has
// already dismissed for this brief.
type ExcludedTalents struct {
	Items []*ExcludedTalent
}

type ExcludedTalent struct {
	Name       string
	Reason     string
	ExcludedAt time.Time
}

// LoadExcluded reads the exclude file. An empty file yields an empty list.
func LoadExcluded(path string) (*ExcludedTalents, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedTalents{}, nil
	}

	var excluded ExcludedTalents
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedTalents) Append(other *ExcludedTalents) {
	e.Items = append(e.Items, other.Items...)
}

func (e *ExcludedTalents) Names() []string {
	names := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		names = append(names, item.Name)
	}
	return names
}

func (e *ExcludedTalents) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// ToExcluded converts the current shortlist into exclude-list entries.
func (r *Results) ToExcluded(reason string) *ExcludedTalents {
	excluded := &ExcludedTalents{}
	for _, result := range r.Items {
		excluded.Items = append(excluded.Items, &ExcludedTalent{
			Name:       result.Talent.Name,
			Reason:     reason,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}
