// Package normalize turns the raw field strings collected from a spell
// document into their structured forms. Every heuristic lives here as a
// named rule with a documented fallback so each one is testable on its own.
package normalize

import "regexp"

// leveledTitleRule matches titles like "1st-level evocation" or
// "3rd-level necromancy (ritual)". Group 1 is the level digit, group 2 the
// school, group 3 the optional ritual marker.
var leveledTitleRule = regexp.MustCompile(`([0-9])(?:st|nd|rd|th)-level ([A-Za-z ]+?)( \(ritual\))?$`)

// cantripTitleRule matches titles like "Conjuration cantrip". Group 1 is
// the school.
var cantripTitleRule = regexp.MustCompile(`([A-Za-z ]+) cantrip`)

// concentrationPrefix is the literal duration prefix that marks a
// concentration spell; it is stripped exactly once.
const concentrationPrefix = "Concentration, "

// verbalRule and somaticRule detect the standalone component letters,
// terminated by a comma or the end of the field.
var (
	verbalRule  = regexp.MustCompile(`\bV(?:,|$)`)
	somaticRule = regexp.MustCompile(`\bS(?:,|$)`)
)

// materialRule detects the material component with its optional
// parenthesized description in group 1.
var materialRule = regexp.MustCompile(`\bM\b(?: \((.+)\))?`)

// damageRule scans prose for damage mentions: an optional dice expression
// (group 1) followed by the damage word (group 2) and the literal "damage".
var damageRule = regexp.MustCompile(`(?i)(?:([0-9]+d[0-9]+(?:\+[0-9]+)?)\s)?([A-Za-z]+) damage`)

// damageTypes is the closed set of recognized damage types; anything else
// found by damageRule still yields a roll but never a type.
var damageTypes = map[string]bool{
	"bludgeoning": true,
	"piercing":    true,
	"slashing":    true,
	"fire":        true,
	"cold":        true,
	"psychic":     true,
	"poison":      true,
	"necrotic":    true,
	"radiant":     true,
}
