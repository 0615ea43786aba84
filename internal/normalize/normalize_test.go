package normalize

import (
	"reflect"
	"testing"

	"github.com/dgallion1/srdex/internal/spell"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		title  string
		level  int
		school string
		ritual bool
		ok     bool
	}{
		{"1st-level evocation (ritual)", 1, "evocation", true, true},
		{"1st-level evocation", 1, "evocation", false, true},
		{"2nd-level abjuration", 2, "abjuration", false, true},
		{"3rd-level necromancy (ritual)", 3, "necromancy", true, true},
		{"9th-level conjuration", 9, "conjuration", false, true},
		{"Conjuration cantrip", 0, "conjuration", false, true},
		{"Fire cantrip", 0, "fire", false, true},
		{"Something else entirely", -1, "", false, false},
		{"", -1, "", false, false},
	}
	for _, tt := range tests {
		level, school, ritual, ok := ParseTitle(tt.title)
		if level != tt.level || school != tt.school || ritual != tt.ritual || ok != tt.ok {
			t.Errorf("ParseTitle(%q) = (%d, %q, %v, %v), want (%d, %q, %v, %v)",
				tt.title, level, school, ritual, ok, tt.level, tt.school, tt.ritual, tt.ok)
		}
	}
}

func TestSplitConcentration(t *testing.T) {
	tests := []struct {
		in   string
		want string
		conc bool
	}{
		{"Concentration, up to 1 minute", "up to 1 minute", true},
		{"Instantaneous", "Instantaneous", false},
		{"Concentration, up to 10 minutes", "up to 10 minutes", true},
		{"1 hour", "1 hour", false},
	}
	for _, tt := range tests {
		got, conc := SplitConcentration(tt.in)
		if got != tt.want || conc != tt.conc {
			t.Errorf("SplitConcentration(%q) = (%q, %v), want (%q, %v)", tt.in, got, conc, tt.want, tt.conc)
		}
	}
}

func TestParseComponents(t *testing.T) {
	tests := []struct {
		in   string
		want spell.Components
	}{
		{
			"V, S, M (a pinch of soot)",
			spell.Components{Verbal: true, Somatic: true, Material: spell.Material{Description: "a pinch of soot", Present: true}},
		},
		{"V, S", spell.Components{Verbal: true, Somatic: true}},
		{"V", spell.Components{Verbal: true}},
		{"S, M (a tiny bell)", spell.Components{Somatic: true, Material: spell.Material{Description: "a tiny bell", Present: true}}},
		// A bare M has no parenthesized description, so material stays false.
		{"V, S, M", spell.Components{Verbal: true, Somatic: true}},
	}
	for _, tt := range tests {
		got := ParseComponents(tt.in)
		if got != tt.want {
			t.Errorf("ParseComponents(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestScanDamage(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		types []string
		rolls []string
	}{
		{
			name:  "dice and type",
			in:    "You deal 2d6 fire damage to the target.",
			types: []string{"fire"},
			rolls: []string{"2d6 fire"},
		},
		{
			name:  "repeat mention keeps one type, no roll",
			in:    "Take 2d6 fire damage. It also resists fire damage.",
			types: []string{"fire"},
			rolls: []string{"2d6 fire"},
		},
		{
			name:  "bonus suffix and multiple types",
			in:    "Deal 1d4+1 cold damage and then 8d6 psychic damage.",
			types: []string{"cold", "psychic"},
			rolls: []string{"1d4+1 cold", "8d6 psychic"},
		},
		{
			name:  "unrecognized type still rolls",
			in:    "A target takes 1d6 acid damage on a hit.",
			types: nil,
			rolls: []string{"1d6 acid"},
		},
		{
			name:  "case insensitive",
			in:    "It takes 3d8 Radiant damage.",
			types: []string{"radiant"},
			rolls: []string{"3d8 radiant"},
		},
		{
			name: "no mentions",
			in:   "You gain advantage on the next check.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types, rolls := ScanDamage(tt.in)
			if !reflect.DeepEqual(types, tt.types) {
				t.Errorf("types = %v, want %v", types, tt.types)
			}
			if !reflect.DeepEqual(rolls, tt.rolls) {
				t.Errorf("rolls = %v, want %v", rolls, tt.rolls)
			}
		})
	}
}

func TestApply(t *testing.T) {
	rec := &spell.Record{
		Fields: map[string]string{
			"duration":     "Concentration, up to 1 minute",
			"components":   "V, S, M (a bit of fleece)",
			"casting time": "1 action",
		},
		Description: []string{"The target takes 4d8 necrotic damage."},
	}
	Apply(rec)

	if !rec.HasDuration || rec.Duration != "up to 1 minute" || !rec.Concentration {
		t.Errorf("duration = (%q, %v, %v)", rec.Duration, rec.HasDuration, rec.Concentration)
	}
	if _, ok := rec.Fields["duration"]; ok {
		t.Error("raw duration field should be removed")
	}
	if rec.Components == nil || !rec.Components.Verbal || !rec.Components.Somatic {
		t.Fatalf("components = %+v", rec.Components)
	}
	if rec.Components.Material.Description != "a bit of fleece" || !rec.Components.Material.Present {
		t.Errorf("material = %+v", rec.Components.Material)
	}
	if _, ok := rec.Fields["components"]; ok {
		t.Error("raw components field should be removed")
	}
	if rec.Fields["casting time"] != "1 action" {
		t.Errorf("casting time = %q", rec.Fields["casting time"])
	}
	if !reflect.DeepEqual(rec.DamageTypes, []string{"necrotic"}) {
		t.Errorf("damageTypes = %v", rec.DamageTypes)
	}
	if !reflect.DeepEqual(rec.DamageRolls, []string{"4d8 necrotic"}) {
		t.Errorf("damageRolls = %v", rec.DamageRolls)
	}
}

func TestApplyWithoutOptionalFields(t *testing.T) {
	rec := &spell.Record{Fields: map[string]string{}}
	Apply(rec)
	if rec.HasDuration || rec.Concentration {
		t.Error("no duration field should leave concentration unset")
	}
	if rec.Components != nil {
		t.Errorf("components = %+v, want nil", rec.Components)
	}
	if rec.DamageTypes != nil || rec.DamageRolls != nil {
		t.Error("empty description should not produce damage results")
	}
}
