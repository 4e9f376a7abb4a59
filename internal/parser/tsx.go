package parser

import (
	"errors"
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ErrSyntax is matched by every error Parse returns for malformed source.
var ErrSyntax = errors.New("syntax error")

// maxSnippet bounds the offending text quoted in a SyntaxError.
const maxSnippet = 24

// SyntaxError describes the first lexical or syntactic problem in a source text.
// Line and Column are 1-based; Column counts bytes.
type SyntaxError struct {
	Line   int
	Column int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Reason)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Tree is one parsed TSX module. It must be closed after use.
type Tree struct {
	tree   *sitter.Tree
	source []byte
}

// Root returns the program node.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Source returns the bytes the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.source
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Parse parses source as TypeScript with JSX enabled.
// Any error or missing node in the resulting tree fails the parse.
func Parse(source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	lang := sitter.NewLanguage(typescript.LanguageTSX())
	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to load tsx grammar: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &SyntaxError{Line: 1, Column: 1, Reason: "parser produced no tree"}
	}

	root := tree.RootNode()
	if root.HasError() {
		err := firstSyntaxError(root, source)
		tree.Close()
		return nil, err
	}

	return &Tree{tree: tree, source: source}, nil
}

// firstSyntaxError locates the first ERROR or MISSING node in document order.
func firstSyntaxError(root *sitter.Node, source []byte) *SyntaxError {
	var found *SyntaxError
	walkTree(root, func(n *sitter.Node) bool {
		if found != nil {
			return false
		}

		pos := n.StartPosition()
		switch {
		case n.IsMissing():
			found = &SyntaxError{
				Line:   int(pos.Row) + 1,
				Column: int(pos.Column) + 1,
				Reason: "missing " + n.Kind(),
			}
			return false
		case n.IsError():
			found = &SyntaxError{
				Line:   int(pos.Row) + 1,
				Column: int(pos.Column) + 1,
				Reason: fmt.Sprintf("unexpected %q", snippet(extractNodeText(n, source))),
			}
			return false
		}
		return n.HasError()
	})

	if found == nil {
		pos := root.StartPosition()
		found = &SyntaxError{Line: int(pos.Row) + 1, Column: int(pos.Column) + 1, Reason: "invalid source"}
	}
	return found
}

func snippet(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if len(text) > maxSnippet {
		text = text[:maxSnippet] + "..."
	}
	return text
}
