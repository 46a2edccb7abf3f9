package measure

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValueUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Measurements map[string]Value `yaml:"measurements"`
	}

	input := `
measurements:
  height: 5'9"
  waist: 26
  shoe: 8.5
  dress: null
`
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	height := doc.Measurements["height"]
	if height.Display() != `5'9"` {
		t.Fatalf("expected height to stay text, got %q", height.Display())
	}

	if got, ok := Parse(doc.Measurements["waist"]); !ok || got != 26 {
		t.Fatalf("expected waist to decode as number 26, got (%v, %v)", got, ok)
	}

	if got, ok := Parse(doc.Measurements["shoe"]); !ok || got != 8.5 {
		t.Fatalf("expected shoe to decode as number 8.5, got (%v, %v)", got, ok)
	}

	if !doc.Measurements["dress"].IsAbsent() {
		t.Fatalf("expected null to decode as absent")
	}
}

func TestValueUnmarshalYAMLRejectsNonScalar(t *testing.T) {
	t.Parallel()

	var v Value
	if err := yaml.Unmarshal([]byte("[1, 2]"), &v); err == nil {
		t.Fatalf("expected error for sequence node")
	}
}

func TestValueMarshalJSON(t *testing.T) {
	t.Parallel()

	payload := map[string]Value{
		"height": Text(`5'9"`),
		"waist":  Number(26),
		"dress":  Absent(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded["height"] != `5'9"` {
		t.Fatalf("unexpected height: %v", decoded["height"])
	}
	if decoded["waist"] != float64(26) {
		t.Fatalf("unexpected waist: %v", decoded["waist"])
	}
	if decoded["dress"] != nil {
		t.Fatalf("expected absent value to marshal as null, got %v", decoded["dress"])
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	if got := Label("height"); got != "Height" {
		t.Fatalf("unexpected label: %q", got)
	}

	if got := Label("  WAIST "); got != "Waist" {
		t.Fatalf("expected lookup to normalize the key, got %q", got)
	}

	if got := Label("wingspan"); got != "wingspan" {
		t.Fatalf("expected fallback to raw key, got %q", got)
	}
}

func TestSetLabel(t *testing.T) {
	SetLabel("collar", "Collar")
	if got := Label("collar"); got != "Collar" {
		t.Fatalf("expected registered label, got %q", got)
	}

	SetLabel("", "ignored")
	SetLabel("collar", "")
	if got := Label("collar"); got != "Collar" {
		t.Fatalf("expected blank override to be ignored, got %q", got)
	}
}
