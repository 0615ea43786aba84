// Package extract recovers a spell.Record from a parsed document tree. The
// document shape is asserted strictly: a structural mismatch means the
// extraction rules are incomplete, and silently dropping content is worse
// than stopping, so every assertion failure is a StructuralError that
// callers escalate to a whole-run abort.
package extract

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dgallion1/srdex/internal/doctree"
	"github.com/dgallion1/srdex/internal/normalize"
	"github.com/dgallion1/srdex/internal/spell"
)

// idRule matches the leading marker comment; group 1 is the record id.
var idRule = regexp.MustCompile(`^_srd:(.*):$`)

// StructuralError reports a document whose shape the extraction rules do not
// cover. Tree is the full parsed document, kept for diagnostics.
type StructuralError struct {
	Msg  string
	Tree *doctree.Node
}

func (e *StructuralError) Error() string {
	return "structural: " + e.Msg
}

func structural(tree *doctree.Node, format string, args ...any) error {
	return &StructuralError{Msg: fmt.Sprintf(format, args...), Tree: tree}
}

// Extract builds a normalized record from one document tree. Unrecognized
// level/school title forms are kept (level -1, empty school) but logged as a
// data-quality defect.
func Extract(doc *doctree.Node, log *slog.Logger) (*spell.Record, error) {
	if doc.Kind != doctree.KindDocument || len(doc.Children) != 2 {
		return nil, structural(doc, "document must be [comment, section], got %d children of %s", len(doc.Children), doc.Kind)
	}
	comment, section := doc.Children[0], doc.Children[1]

	if comment.Kind != doctree.KindComment || len(comment.Children) != 1 || comment.Children[0].Kind != doctree.KindText {
		return nil, structural(doc, "leading node must be a comment with one text child, got %s", comment.Kind)
	}
	m := idRule.FindStringSubmatch(comment.Children[0].Value)
	if m == nil {
		return nil, structural(doc, "marker comment %q does not match id pattern", comment.Children[0].Value)
	}
	id := m[1]

	if section.Kind != doctree.KindSection || len(section.Children) != 2 {
		return nil, structural(doc, "outer section must be [title, section], got %d children of %s", len(section.Children), section.Kind)
	}
	title, nested := section.Children[0], section.Children[1]
	if title.Kind != doctree.KindTitle || len(title.Children) == 0 || title.Children[0].Kind != doctree.KindText {
		return nil, structural(doc, "outer title must lead with text")
	}
	name := title.Children[0].Value

	if nested.Kind != doctree.KindSection || len(nested.Children) == 0 {
		return nil, structural(doc, "nested section missing, got %s", nested.Kind)
	}
	subTitle := nested.Children[0]
	if subTitle.Kind != doctree.KindTitle || len(subTitle.Children) == 0 || subTitle.Children[0].Kind != doctree.KindText {
		return nil, structural(doc, "level/school title must lead with text")
	}

	level, school, ritual, ok := normalize.ParseTitle(subTitle.Children[0].Value)
	if !ok {
		log.Warn("unrecognized level/school title", "id", id, "title", subTitle.Children[0].Value)
	}

	rec := &spell.Record{
		ID:     id,
		Name:   name,
		Level:  level,
		School: school,
		Ritual: ritual,
		Fields: make(map[string]string),
	}
	if err := collectBody(rec, doc, nested.Children[1:]); err != nil {
		return nil, err
	}
	normalize.Apply(rec)
	return rec, nil
}
