package extract

import (
	"strings"

	"github.com/dgallion1/srdex/internal/doctree"
)

// crossRefMarker is the reference residue trimmed from plain text fragments.
const crossRefMarker = "_"

// refNamespace is the cross-reference namespace prefix stripped from
// interpreted-text spans.
const refNamespace = "srd:"

// valuesToString renders a sequence of inline nodes to one string. Plain
// text is trimmed, emphasis and strong contribute their contents with the
// markers dropped, interpreted text loses its namespace prefix. Rendered
// pieces are joined with single spaces; any other inline kind is a
// structural error.
func valuesToString(doc *doctree.Node, inlines []*doctree.Node) (string, error) {
	parts := make([]string, 0, len(inlines))
	for _, n := range inlines {
		var piece string
		switch n.Kind {
		case doctree.KindText:
			piece = strings.TrimSpace(strings.TrimPrefix(n.Value, crossRefMarker))

		case doctree.KindEmphasis, doctree.KindStrong:
			inner, err := valuesToString(doc, n.Children)
			if err != nil {
				return "", err
			}
			piece = inner

		case doctree.KindInterpretedText:
			inner, err := valuesToString(doc, n.Children)
			if err != nil {
				return "", err
			}
			piece = strings.TrimPrefix(inner, refNamespace)

		default:
			return "", structural(doc, "no rendering rule for inline %s", n.Kind)
		}
		if piece != "" {
			parts = append(parts, piece)
		}
	}
	return strings.Join(parts, " "), nil
}
