package openmeteo

import (
	"encoding/json"
	"fmt"
)

// APIResponse is the common envelope returned by both the archive and the
// forecast endpoints.
type APIResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Daily     *VariableBlock `json:"daily,omitempty"`
	Hourly    *VariableBlock `json:"hourly,omitempty"`
}

// VariableBlock holds one granularity of an Open-Meteo response: a time axis
// plus one numeric array per requested variable, keyed by variable name. The
// arrays are parallel to Time; Open-Meteo reports missing readings as null,
// which decode to nil entries.
type VariableBlock struct {
	Time   []string
	Values map[string][]*float64
}

func (b *VariableBlock) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.Values = make(map[string][]*float64, len(raw))
	for name, msg := range raw {
		if name == "time" {
			if err := json.Unmarshal(msg, &b.Time); err != nil {
				return fmt.Errorf("failed to decode time axis: %w", err)
			}
			continue
		}

		var values []*float64
		if err := json.Unmarshal(msg, &values); err != nil {
			return fmt.Errorf("failed to decode variable %q: %w", name, err)
		}
		b.Values[name] = values
	}

	return nil
}

// At returns the value of the named variable at the given index. The second
// return is false when the variable is absent, the index is out of range, or
// the reading is null.
func (b *VariableBlock) At(name string, index int) (float64, bool) {
	if b == nil {
		return 0, false
	}
	values, ok := b.Values[name]
	if !ok || index < 0 || index >= len(values) || values[index] == nil {
		return 0, false
	}
	return *values[index], true
}
