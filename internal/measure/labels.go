package measure

import "strings"

// Built-in display labels for the measurement fields briefs commonly use.
var labels = map[string]string{
	"height": "Height",
	"weight": "Weight",
	"bust":   "Bust",
	"chest":  "Chest",
	"waist":  "Waist",
	"hips":   "Hips",
	"inseam": "Inseam",
	"sleeve": "Sleeve",
	"neck":   "Neck",
	"shoe":   "Shoe",
	"suit":   "Suit",
	"dress":  "Dress",
	"glove":  "Glove",
	"hat":    "Hat",
}

// Label returns the display label registered for a field key, falling back
// to the key itself.
func Label(key string) string {
	if label, ok := labels[strings.ToLower(strings.TrimSpace(key))]; ok {
		return label
	}
	return key
}

// SetLabel registers or overrides a display label. Meant to be called during
// startup from configuration, before any matching runs.
func SetLabel(key, label string) {
	key = strings.ToLower(strings.TrimSpace(key))
	label = strings.TrimSpace(label)
	if key == "" || label == "" {
		return
	}
	labels[key] = label
}
