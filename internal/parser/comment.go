package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/srdex/internal/doctree"
	"github.com/yuin/goldmark/ast"
	"golang.org/x/net/html"
)

// convertComment maps an HTML block to a comment node. Only comment blocks
// are representable; any other raw HTML is a parse error.
func convertComment(block *ast.HTMLBlock, src []byte) (*doctree.Node, error) {
	var raw bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		raw.Write(seg.Value(src))
	}
	if block.HasClosure() {
		raw.Write(block.ClosureLine.Value(src))
	}

	z := html.NewTokenizer(bytes.NewReader(raw.Bytes()))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return nil, fmt.Errorf("html block is not a comment: %q", raw.String())
		case html.CommentToken:
			text := strings.TrimSpace(z.Token().Data)
			return doctree.NewNode(doctree.KindComment, doctree.NewText(text)), nil
		case html.TextToken:
			if strings.TrimSpace(string(z.Text())) == "" {
				continue
			}
			return nil, fmt.Errorf("html block is not a comment: %q", raw.String())
		default:
			return nil, fmt.Errorf("unsupported html block: %q", raw.String())
		}
	}
}
