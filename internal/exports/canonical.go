package exports

import (
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Canonical renders a declaration subtree as a deterministic S-expression.
//
// Every node kind, field name and leaf token is included; comments and
// inter-token whitespace are not. Two renderings are equal exactly when the
// declarations are token-for-token identical.
func Canonical(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	writeCanonical(&b, node, source)
	return b.String()
}

func writeCanonical(b *strings.Builder, node *sitter.Node, source []byte) {
	count := node.ChildCount()
	if count == 0 {
		text := strconv.Quote(string(source[node.StartByte():node.EndByte()]))
		if node.IsNamed() {
			b.WriteString("(")
			b.WriteString(node.Kind())
			b.WriteString(" ")
			b.WriteString(text)
			b.WriteString(")")
			return
		}
		b.WriteString(text)
		return
	}

	b.WriteString("(")
	b.WriteString(node.Kind())

	// Text not covered by any child (e.g. literal template chunks in some
	// grammar versions) is emitted verbatim unless it is pure whitespace.
	prevEnd := node.StartByte()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		writeGap(b, source[prevEnd:child.StartByte()])
		prevEnd = child.EndByte()

		if child.IsExtra() {
			continue
		}

		b.WriteString(" ")
		if field := node.FieldNameForChild(uint32(i)); field != "" {
			b.WriteString(field)
			b.WriteString(":")
		}
		writeCanonical(b, child, source)
	}
	writeGap(b, source[prevEnd:node.EndByte()])

	b.WriteString(")")
}

func writeGap(b *strings.Builder, gap []byte) {
	if len(gap) == 0 || strings.TrimSpace(string(gap)) == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(strconv.Quote(string(gap)))
}
