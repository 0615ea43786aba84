package parser

import (
	"fmt"

	"github.com/dgallion1/srdex/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Parse converts one Markdown spell document into a doctree. The goldmark
// AST is mapped onto the closed doctree taxonomy; any construct without a
// mapping (code blocks, images, links, raw HTML spans) is a parse error,
// which callers treat as a soft per-document failure.
func Parse(src []byte) (*doctree.Node, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := doctree.NewNode(doctree.KindDocument)

	// Headings open nested sections; a stack tracks the current nesting,
	// with the document itself at level 0.
	type stackEntry struct {
		node  *doctree.Node
		level int
	}
	stack := []stackEntry{{node: doc, level: 0}}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title, err := convertInlines(node, src)
			if err != nil {
				return nil, err
			}
			sec := doctree.NewNode(doctree.KindSection,
				doctree.NewNode(doctree.KindTitle, title...))

			for len(stack) > 1 && stack[len(stack)-1].level >= node.Level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, sec)
			stack = append(stack, stackEntry{node: sec, level: node.Level})

		case *ast.HTMLBlock:
			comment, err := convertComment(node, src)
			if err != nil {
				return nil, err
			}
			top := stack[len(stack)-1].node
			top.Children = append(top.Children, comment)

		default:
			block, err := convertBlock(n, src)
			if err != nil {
				return nil, err
			}
			top := stack[len(stack)-1].node
			top.Children = append(top.Children, block)
		}
	}

	return doc, nil
}

// convertBlock maps a non-heading goldmark block onto the doctree.
func convertBlock(n ast.Node, src []byte) (*doctree.Node, error) {
	switch node := n.(type) {
	case *ast.Paragraph:
		inlines, err := convertInlines(node, src)
		if err != nil {
			return nil, err
		}
		return doctree.NewNode(doctree.KindParagraph, inlines...), nil

	case *ast.TextBlock:
		// Tight list items carry their text as a TextBlock.
		inlines, err := convertInlines(node, src)
		if err != nil {
			return nil, err
		}
		return doctree.NewNode(doctree.KindParagraph, inlines...), nil

	case *ast.List:
		kind := doctree.KindBulletList
		if node.IsOrdered() {
			kind = doctree.KindEnumeratedList
		}
		list := doctree.NewNode(kind)
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			li := doctree.NewNode(doctree.KindListItem)
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				block, err := convertBlock(c, src)
				if err != nil {
					return nil, err
				}
				li.Children = append(li.Children, block)
			}
			list.Children = append(list.Children, li)
		}
		return list, nil

	case *east.Table:
		return convertTable(node, src)

	default:
		return nil, fmt.Errorf("unsupported block %s", n.Kind())
	}
}

// convertTable maps a GFM table to table/table_row/table_cell nodes, header
// row first.
func convertTable(table *east.Table, src []byte) (*doctree.Node, error) {
	out := doctree.NewNode(doctree.KindTable)
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *east.TableHeader, *east.TableRow:
		default:
			return nil, fmt.Errorf("unsupported table child %s", row.Kind())
		}
		r := doctree.NewNode(doctree.KindTableRow)
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			inlines, err := convertInlines(cell, src)
			if err != nil {
				return nil, err
			}
			r.Children = append(r.Children, doctree.NewNode(doctree.KindTableCell, inlines...))
		}
		out.Children = append(out.Children, r)
	}
	return out, nil
}

// convertInlines maps a block's inline children onto text, emphasis, strong
// and interpreted_text nodes.
func convertInlines(parent ast.Node, src []byte) ([]*doctree.Node, error) {
	var out []*doctree.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			out = append(out, doctree.NewText(string(node.Segment.Value(src))))

		case *ast.String:
			out = append(out, doctree.NewText(string(node.Value)))

		case *ast.Emphasis:
			children, err := convertInlines(node, src)
			if err != nil {
				return nil, err
			}
			kind := doctree.KindEmphasis
			if node.Level >= 2 {
				kind = doctree.KindStrong
			}
			out = append(out, doctree.NewNode(kind, children...))

		case *ast.CodeSpan:
			// Code spans are the Markdown rendition of interpreted-text
			// roles; cross-references are written `srd:name`.
			children, err := convertInlines(node, src)
			if err != nil {
				return nil, err
			}
			out = append(out, doctree.NewNode(doctree.KindInterpretedText, children...))

		default:
			return nil, fmt.Errorf("unsupported inline %s", c.Kind())
		}
	}
	return out, nil
}
