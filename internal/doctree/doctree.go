package doctree

import (
	"fmt"
	"strings"
)

// Kind tags a node with its structural role. The set is closed: the
// extraction rules understand exactly these kinds, and the parser never
// constructs anything outside it.
type Kind int

const (
	KindDocument Kind = iota
	KindComment
	KindSection
	KindTitle
	KindText
	KindParagraph
	KindBulletList
	KindEnumeratedList
	KindListItem
	KindStrong
	KindEmphasis
	KindInterpretedText
	KindTable
	KindTableRow
	KindTableCell
)

var kindNames = map[Kind]string{
	KindDocument:        "document",
	KindComment:         "comment",
	KindSection:         "section",
	KindTitle:           "title",
	KindText:            "text",
	KindParagraph:       "paragraph",
	KindBulletList:      "bullet_list",
	KindEnumeratedList:  "enumerated_list",
	KindListItem:        "list_item",
	KindStrong:          "strong",
	KindEmphasis:        "emphasis",
	KindInterpretedText: "interpreted_text",
	KindTable:           "table",
	KindTableRow:        "table_row",
	KindTableCell:       "table_cell",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Node is one node of a parsed document tree. Text nodes carry a literal
// Value and have no children; every other kind carries children only.
// Trees are read-only after construction.
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
}

// NewText returns a leaf text node.
func NewText(value string) *Node {
	return &Node{Kind: KindText, Value: value}
}

// NewNode returns a container node of the given kind.
func NewNode(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Dump renders the tree in an indented one-node-per-line form, used in
// fatal diagnostics so the offending structure is visible.
func (n *Node) Dump() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("    ", depth))
	sb.WriteString("<")
	sb.WriteString(n.Kind.String())
	sb.WriteString(">")
	if n.Kind == KindText {
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprintf("%q", n.Value))
	}
	sb.WriteString("\n")
	for _, c := range n.Children {
		c.dump(sb, depth+1)
	}
}
