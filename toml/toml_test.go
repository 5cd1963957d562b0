package toml

import (
	"testing"
)

// Trimmed to a focused round-trip suite: config/config_test.go already
// exercises Save/Load through this codec end-to-end, so these tests
// cover Marshal/Unmarshal directly at the points config doesn't reach
// (nested tables, arrays of tables, inline arrays, maps, omitempty).

type innerConfig struct {
	Name    string  `toml:"name"`
	Weight  float64 `toml:"weight"`
	Enabled bool    `toml:"enabled,omitempty"`
}

type rootConfig struct {
	MaxReflections int            `toml:"max_reflections"`
	Tags           []string       `toml:"tags"`
	Inner          innerConfig    `toml:"inner"`
	Items          []innerConfig  `toml:"items"`
	Extra          map[string]int `toml:"extra"`
	Skip           *innerConfig   `toml:"skip"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := rootConfig{
		MaxReflections: 5,
		Tags:           []string{"mirror", "wall"},
		Inner:          innerConfig{Name: "ceiling", Weight: 1.5, Enabled: true},
		Items: []innerConfig{
			{Name: "left", Weight: 0.5},
			{Name: "right", Weight: 2.25, Enabled: true},
		},
		Extra: map[string]int{"a": 1, "b": 2},
	}

	data, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out rootConfig
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v\n--- data ---\n%s", err, data)
	}

	if out.MaxReflections != in.MaxReflections {
		t.Errorf("MaxReflections: got %d want %d", out.MaxReflections, in.MaxReflections)
	}
	if len(out.Tags) != 2 || out.Tags[0] != "mirror" || out.Tags[1] != "wall" {
		t.Errorf("Tags round-trip mismatch: got %v", out.Tags)
	}
	if out.Inner != in.Inner {
		t.Errorf("Inner round-trip mismatch: got %+v want %+v", out.Inner, in.Inner)
	}
	if len(out.Items) != 2 || out.Items[0].Name != "left" || out.Items[1].Name != "right" {
		t.Fatalf("Items (array of tables) round-trip mismatch: got %+v", out.Items)
	}
	if out.Extra["a"] != 1 || out.Extra["b"] != 2 {
		t.Errorf("Extra map round-trip mismatch: got %v", out.Extra)
	}
	if out.Skip != nil {
		t.Errorf("expected a nil Skip pointer to stay absent, got %+v", out.Skip)
	}
}

func TestMarshalOmitsNilPointerAndEmptyOptional(t *testing.T) {
	in := rootConfig{Inner: innerConfig{Name: "floor", Weight: 1}}
	data, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if containsKey(string(data), "skip") {
		t.Error("expected a nil *innerConfig field to be omitted entirely")
	}
	if containsKey(string(data), "enabled") {
		t.Error("expected omitempty to drop a false bool field")
	}
}

func TestUnmarshalRejectsNonPointerTarget(t *testing.T) {
	var out rootConfig
	if err := Unmarshal([]byte(`max_reflections = 1`), out); err == nil {
		t.Fatal("expected an error for a non-pointer decode target")
	}
}

func containsKey(toml, key string) bool {
	for _, line := range splitLines(toml) {
		if len(line) >= len(key) && line[:len(key)] == key {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
