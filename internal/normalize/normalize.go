package normalize

import (
	"strconv"
	"strings"

	"github.com/dgallion1/srdex/internal/spell"
)

// ParseTitle resolves a level/school title. Leveled titles win over the
// cantrip form; when neither rule matches, ok is false and the fallback
// values (level -1, empty school) are returned so callers can surface the
// unrecognized form instead of silently accepting it.
func ParseTitle(title string) (level int, school string, ritual bool, ok bool) {
	if m := leveledTitleRule.FindStringSubmatch(title); m != nil {
		level, _ = strconv.Atoi(m[1])
		return level, m[2], m[3] != "", true
	}
	if m := cantripTitleRule.FindStringSubmatch(title); m != nil {
		return 0, strings.ToLower(m[1]), false, true
	}
	return -1, "", false, false
}

// SplitConcentration strips the concentration prefix from a duration field.
func SplitConcentration(duration string) (string, bool) {
	if rest, found := strings.CutPrefix(duration, concentrationPrefix); found {
		return rest, true
	}
	return duration, false
}

// ParseComponents decomposes a raw components field such as
// "V, S, M (a pinch of soot)".
func ParseComponents(raw string) spell.Components {
	c := spell.Components{
		Verbal:  verbalRule.MatchString(raw),
		Somatic: somaticRule.MatchString(raw),
	}
	if m := materialRule.FindStringSubmatch(raw); m != nil && m[1] != "" {
		c.Material = spell.Material{Description: m[1], Present: true}
	}
	return c
}

// ScanDamage finds all damage mentions in prose. Recognized types are
// recorded once each in order of first appearance; every mention with a dice
// expression contributes a roll, recognized type or not.
func ScanDamage(text string) (types []string, rolls []string) {
	seen := make(map[string]bool)
	for _, m := range damageRule.FindAllStringSubmatch(text, -1) {
		dice, word := m[1], strings.ToLower(m[2])
		if damageTypes[word] && !seen[word] {
			seen[word] = true
			types = append(types, word)
		}
		if dice != "" {
			rolls = append(rolls, dice+" "+word)
		}
	}
	return types, rolls
}

// Apply runs every normalization rule over a freshly collected record: the
// duration and components fields move from the raw field map into their
// structured forms, and the description is scanned for damage.
func Apply(rec *spell.Record) {
	if raw, ok := rec.Fields["duration"]; ok {
		rec.Duration, rec.Concentration = SplitConcentration(raw)
		rec.HasDuration = true
		delete(rec.Fields, "duration")
	}
	if raw, ok := rec.Fields["components"]; ok {
		c := ParseComponents(raw)
		rec.Components = &c
		delete(rec.Fields, "components")
	}
	if len(rec.Description) > 0 {
		rec.DamageTypes, rec.DamageRolls = ScanDamage(strings.Join(rec.Description, "\n"))
	}
}
