package extract

import (
	"fmt"
	"strings"

	"github.com/dgallion1/srdex/internal/doctree"
	"github.com/dgallion1/srdex/internal/spell"
)

// collectBody walks the body blocks after the level/school title. Each
// non-empty block becomes either one named field (paragraph led by a strong
// label) or exactly one description entry. doc is the full tree, passed
// through for diagnostics.
func collectBody(rec *spell.Record, doc *doctree.Node, blocks []*doctree.Node) error {
	for _, block := range blocks {
		if len(block.Children) == 0 {
			continue
		}

		if first := block.Children[0]; first.Kind == doctree.KindStrong {
			if block.Kind != doctree.KindParagraph {
				return structural(doc, "strong label inside %s, want paragraph", block.Kind)
			}
			label, err := valuesToString(doc, first.Children)
			if err != nil {
				return err
			}
			label = strings.TrimSuffix(strings.ToLower(label), ":")
			value, err := valuesToString(doc, block.Children[1:])
			if err != nil {
				return err
			}
			rec.Fields[label] = value
			continue
		}

		switch block.Kind {
		case doctree.KindParagraph:
			text, err := valuesToString(doc, block.Children)
			if err != nil {
				return err
			}
			rec.Description = append(rec.Description, text)

		case doctree.KindBulletList:
			lines := make([]string, 0, len(block.Children))
			for _, item := range block.Children {
				text, err := itemToString(doc, item)
				if err != nil {
					return err
				}
				lines = append(lines, "- "+text)
			}
			rec.Description = append(rec.Description, strings.Join(lines, "\n"))

		case doctree.KindEnumeratedList:
			lines := make([]string, 0, len(block.Children))
			for i, item := range block.Children {
				text, err := itemToString(doc, item)
				if err != nil {
					return err
				}
				lines = append(lines, fmt.Sprintf("%d. %s", i, text))
			}
			rec.Description = append(rec.Description, strings.Join(lines, "\n"))

		case doctree.KindTable:
			text, err := tableToString(doc, block)
			if err != nil {
				return err
			}
			rec.Description = append(rec.Description, text)

		default:
			return structural(doc, "no collection rule for block %s", block.Kind)
		}
	}
	return nil
}

// itemToString renders one list item. Items hold paragraph blocks only.
func itemToString(doc, item *doctree.Node) (string, error) {
	if item.Kind != doctree.KindListItem {
		return "", structural(doc, "list child is %s, want list_item", item.Kind)
	}
	parts := make([]string, 0, len(item.Children))
	for _, block := range item.Children {
		if block.Kind != doctree.KindParagraph {
			return "", structural(doc, "list item holds %s, want paragraph", block.Kind)
		}
		text, err := valuesToString(doc, block.Children)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " "), nil
}

// tableToString renders a body table into one description entry: rows
// joined by newlines, cells joined by " | ", header row first.
func tableToString(doc, table *doctree.Node) (string, error) {
	rows := make([]string, 0, len(table.Children))
	for _, row := range table.Children {
		if row.Kind != doctree.KindTableRow {
			return "", structural(doc, "table child is %s, want table_row", row.Kind)
		}
		cells := make([]string, 0, len(row.Children))
		for _, cell := range row.Children {
			if cell.Kind != doctree.KindTableCell {
				return "", structural(doc, "row child is %s, want table_cell", cell.Kind)
			}
			text, err := valuesToString(doc, cell.Children)
			if err != nil {
				return "", err
			}
			cells = append(cells, text)
		}
		rows = append(rows, strings.Join(cells, " | "))
	}
	return strings.Join(rows, "\n"), nil
}
