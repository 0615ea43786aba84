package spell

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecordMarshalJSON(t *testing.T) {
	rec := &Record{
		ID:            "acid-arrow",
		Name:          "Acid Arrow",
		Level:         2,
		School:        "evocation",
		Ritual:        false,
		Duration:      "Instantaneous",
		HasDuration:   true,
		Concentration: false,
		Components: &Components{
			Verbal:   true,
			Somatic:  true,
			Material: Material{Description: "powdered rhubarb leaf", Present: true},
		},
		Fields: map[string]string{
			"casting time": "1 action",
			"range":        "90 feet",
		},
		Description: []string{"A shimmering green arrow streaks toward a target."},
		DamageTypes: []string{"acid"},
		DamageRolls: []string{"4d4 acid"},
	}

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if m["id"] != "acid-arrow" || m["name"] != "Acid Arrow" {
		t.Errorf("id/name = %v/%v", m["id"], m["name"])
	}
	if m["level"] != float64(2) || m["school"] != "evocation" {
		t.Errorf("level/school = %v/%v", m["level"], m["school"])
	}
	if m["casting time"] != "1 action" || m["range"] != "90 feet" {
		t.Errorf("labeled fields not promoted: %v", m)
	}
	if m["duration"] != "Instantaneous" || m["concentration"] != false {
		t.Errorf("duration block = %v/%v", m["duration"], m["concentration"])
	}
	comps, ok := m["components"].(map[string]any)
	if !ok {
		t.Fatalf("components = %T", m["components"])
	}
	if comps["material"] != "powdered rhubarb leaf" {
		t.Errorf("material = %v", comps["material"])
	}
}

func TestRecordMarshalOptionalKeys(t *testing.T) {
	rec := &Record{ID: "guidance", Name: "Guidance", Level: 0, School: "divination"}

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(out)

	for _, absent := range []string{`"duration"`, `"concentration"`, `"components"`} {
		if strings.Contains(s, absent) {
			t.Errorf("expected %s to be omitted, got %s", absent, s)
		}
	}
	// Collections are always present, possibly empty.
	for _, present := range []string{`"description":[]`, `"damageTypes":[]`, `"damageRolls":[]`} {
		if !strings.Contains(s, present) {
			t.Errorf("expected %s in output, got %s", present, s)
		}
	}
}

func TestMaterialMarshalFalse(t *testing.T) {
	out, err := json.Marshal(Components{Verbal: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"material":false`) {
		t.Errorf("absent material should encode as false, got %s", out)
	}
}

func TestRecordMarshalDeterministic(t *testing.T) {
	rec := &Record{
		ID:     "bless",
		Name:   "Bless",
		Level:  1,
		School: "enchantment",
		Fields: map[string]string{"range": "30 feet", "classes": "Cleric, Paladin", "casting time": "1 action"},
	}
	first, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("marshaling is not deterministic:\n%s\n%s", first, again)
		}
	}
}
