package exports

import (
	"strings"

	"github.com/mvp-joe/export-diff/internal/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// collector accumulates one snapshot during a single walk.
type collector struct {
	source []byte
	snap   *Snapshot
}

// Collect walks a parsed module once and returns its export snapshot.
func Collect(tree *parser.Tree) *Snapshot {
	c := &collector{
		source: tree.Source(),
		snap:   NewSnapshot(),
	}
	c.visit(tree.Root())
	return c.snap
}

// CollectSource parses source and collects its snapshot.
func CollectSource(source []byte) (*Snapshot, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return Collect(tree), nil
}

// visit descends through statements looking for module-level declarations.
// It never enters function, class or namespace bodies.
func (c *collector) visit(node *sitter.Node) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "export_statement":
		c.visitExport(node)
		return

	case "lexical_declaration", "variable_declaration",
		"function_declaration", "generator_function_declaration", "function_signature",
		"class_declaration", "abstract_class_declaration",
		"ambient_declaration":
		c.recordDeclaration(node, false)
		return

	case "function_expression", "function", "generator_function", "arrow_function",
		"method_definition", "class", "class_body",
		"internal_module", "module":
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		c.visit(node.Child(i))
	}
}

// visitExport classifies one export statement.
func (c *collector) visitExport(node *sitter.Node) {
	if parser.FindChildByType(node, "default") != nil {
		c.snap.addExport(DefaultExport)
		return
	}

	if decl := node.ChildByFieldName("declaration"); decl != nil {
		c.recordDeclaration(decl, true)
		return
	}

	if clause := parser.FindChildByType(node, "export_clause"); clause != nil {
		for _, specifier := range parser.FindChildrenByType(clause, "export_specifier") {
			name := specifier.ChildByFieldName("alias")
			if name == nil {
				name = specifier.ChildByFieldName("name")
			}
			if name != nil {
				c.snap.addExport(c.moduleExportName(name))
			}
		}
		return
	}

	if ns := parser.FindChildByType(node, "namespace_export"); ns != nil {
		for i := uint(0); i < ns.NamedChildCount(); i++ {
			c.snap.addExport(c.moduleExportName(ns.NamedChild(i)))
		}
		return
	}

	if parser.FindChildByType(node, "*") != nil {
		c.snap.addExport(WildcardExport)
	}
}

// recordDeclaration stores the bodies of a variable, function or class
// declaration, and exports its names when exported is set. Other
// declaration kinds are ignored.
func (c *collector) recordDeclaration(decl *sitter.Node, exported bool) {
	switch decl.Kind() {
	case "lexical_declaration", "variable_declaration":
		for _, d := range parser.FindChildrenByType(decl, "variable_declarator") {
			name := d.ChildByFieldName("name")
			if name == nil || name.Kind() != "identifier" {
				continue
			}
			c.record(parser.NodeText(name, c.source), d, exported)
		}

	case "function_declaration", "generator_function_declaration", "function_signature",
		"class_declaration", "abstract_class_declaration":
		name := decl.ChildByFieldName("name")
		if name == nil {
			return
		}
		c.record(parser.NodeText(name, c.source), decl, exported)

	case "ambient_declaration":
		for i := uint(0); i < decl.NamedChildCount(); i++ {
			c.recordDeclaration(decl.NamedChild(i), exported)
		}
	}
}

func (c *collector) record(name string, decl *sitter.Node, exported bool) {
	if exported {
		c.snap.addExport(name)
	}
	c.snap.setBody(name, Canonical(decl, c.source))
}

// moduleExportName returns an export name, unquoting string names.
func (c *collector) moduleExportName(node *sitter.Node) string {
	if node.Kind() == "string" {
		if frag := parser.FindChildByType(node, "string_fragment"); frag != nil {
			return parser.NodeText(frag, c.source)
		}
		text := parser.NodeText(node, c.source)
		return strings.Trim(text, `"'`)
	}
	return parser.NodeText(node, c.source)
}
