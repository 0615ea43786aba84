package spell

import "encoding/json"

// Material is the material component of a spell: either absent (encoded as
// JSON false, matching the corpus convention) or the parenthesized
// description text.
type Material struct {
	Description string
	Present     bool
}

func (m Material) MarshalJSON() ([]byte, error) {
	if !m.Present {
		return []byte("false"), nil
	}
	return json.Marshal(m.Description)
}

// Components is the decomposed components field.
type Components struct {
	Verbal   bool     `json:"verbal"`
	Somatic  bool     `json:"somatic"`
	Material Material `json:"material"`
}

// Record is one fully extracted and normalized spell. A Record is built once
// per successfully parsed document and not mutated afterwards.
type Record struct {
	ID     string
	Name   string
	Level  int
	School string
	Ritual bool

	// Duration is meaningful only when HasDuration is set; Concentration is
	// emitted only alongside a duration.
	Duration      string
	HasDuration   bool
	Concentration bool

	// Components is nil when the document had no components field.
	Components *Components

	// Fields holds the remaining labeled paragraphs (casting time, range,
	// classes, ...) keyed by lowercased label with the trailing colon
	// stripped.
	Fields map[string]string

	Description []string
	DamageTypes []string
	DamageRolls []string
}

// MarshalJSON flattens the record: fixed keys, the labeled fields promoted
// to top-level keys, and optional keys omitted when absent. Map encoding
// sorts keys, so output is deterministic.
func (r *Record) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"id":          r.ID,
		"name":        r.Name,
		"level":       r.Level,
		"school":      r.School,
		"ritual":      r.Ritual,
		"description": emptyAsList(r.Description),
		"damageTypes": emptyAsList(r.DamageTypes),
		"damageRolls": emptyAsList(r.DamageRolls),
	}
	if r.HasDuration {
		m["duration"] = r.Duration
		m["concentration"] = r.Concentration
	}
	if r.Components != nil {
		m["components"] = r.Components
	}
	for k, v := range r.Fields {
		m[k] = v
	}
	return json.Marshal(m)
}

func emptyAsList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
