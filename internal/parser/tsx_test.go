package parser

// Test Plan for Parse:
// - Valid TypeScript and TSX (JSX elements, generics, type annotations) parse
// - Empty source parses to an empty program
// - Malformed source returns a *SyntaxError matching ErrSyntax
// - The reported position is 1-based and points at the first problem
// - Helper lookups find direct children by kind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{"empty", ""},
		{"const", "export const a = 1;"},
		{"types", "export function f<T>(x: T): T { return x; }\ninterface I { a: string }"},
		{"jsx", "export const C = () => <div className=\"x\">{1}</div>;"},
		{"class", "export abstract class A { abstract m(): void; }"},
		{"comments only", "// nothing here\n/* at all */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := Parse([]byte(tt.source))
			require.NoError(t, err)
			defer tree.Close()

			assert.Equal(t, "program", tree.Root().Kind())
			assert.Equal(t, tt.source, string(tree.Source()))
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		line   int
	}{
		{"missing initializer", "export const = ;", 1},
		{"unbalanced brace", "export function f() {\n  return 1;\n", 0},
		{"error on later line", "export const a = 1;\nexport const b = );\n", 2},
		{"unclosed jsx", "export const C = () => <div>;\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := Parse([]byte(tt.source))
			require.Error(t, err)
			assert.Nil(t, tree)
			assert.True(t, errors.Is(err, ErrSyntax))

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.GreaterOrEqual(t, syntaxErr.Line, 1)
			assert.GreaterOrEqual(t, syntaxErr.Column, 1)
			assert.NotEmpty(t, syntaxErr.Reason)
			if tt.line > 0 {
				assert.Equal(t, tt.line, syntaxErr.Line)
			}
		})
	}
}

func TestSyntaxError_Message(t *testing.T) {
	t.Parallel()

	err := &SyntaxError{Line: 3, Column: 7, Reason: `unexpected ")"`}
	assert.Equal(t, `syntax error at 3:7: unexpected ")"`, err.Error())
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", snippet("  abc  \nmore"))
	assert.Equal(t, "012345678901234567890123...", snippet("012345678901234567890123456789"))
}

func TestFindChildByType(t *testing.T) {
	t.Parallel()

	source := []byte("export { a as b };")
	tree, err := Parse(source)
	require.NoError(t, err)
	defer tree.Close()

	stmt := FindChildByType(tree.Root(), "export_statement")
	require.NotNil(t, stmt)

	clause := FindChildByType(stmt, "export_clause")
	require.NotNil(t, clause)

	specs := FindChildrenByType(clause, "export_specifier")
	require.Len(t, specs, 1)
	assert.Equal(t, "a as b", NodeText(specs[0], source))

	assert.Nil(t, FindChildByType(stmt, "class_declaration"))
}
