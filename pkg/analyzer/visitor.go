package analyzer

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/depscan/depscan/pkg/modfacts"
)

// Node kinds recognized by the fact visitor. The set is fixed by the
// javascript/typescript/tsx grammars.
const (
	kindImportStatement    = "import_statement"
	kindImportClause       = "import_clause"
	kindImportSpecifier    = "import_specifier"
	kindNamespaceImport    = "namespace_import"
	kindNamedImports       = "named_imports"
	kindIdentifier         = "identifier"
	kindExportStatement    = "export_statement"
	kindExportClause       = "export_clause"
	kindExportSpecifier    = "export_specifier"
	kindNamespaceExport    = "namespace_export"
	kindVariableDeclarator = "variable_declarator"
	kindDefaultKeyword     = "default"

	fieldSource      = "source"
	fieldName        = "name"
	fieldAlias       = "alias"
	fieldDeclaration = "declaration"
	fieldValue       = "value"
)

// declarationKinds are export declaration node kinds whose "name" field is
// the exported name.
var declarationKinds = map[string]bool{
	"function_declaration":           true,
	"generator_function_declaration": true,
	"class_declaration":              true,
	"abstract_class_declaration":     true,
	"interface_declaration":          true,
	"type_alias_declaration":         true,
	"enum_declaration":               true,
}

// variableDeclarationKinds are export declaration node kinds holding one or
// more variable_declarator children.
var variableDeclarationKinds = map[string]bool{
	"lexical_declaration":  true,
	"variable_declaration": true,
}

// factVisitor accumulates one file's facts during a single document-order
// tree walk.
type factVisitor struct {
	builder *modfacts.RecordBuilder
	source  []byte
}

func newFactVisitor(path string, source []byte) *factVisitor {
	return &factVisitor{
		builder: modfacts.NewRecordBuilder(path),
		source:  source,
	}
}

// walk visits the tree in document order. Import and export statements are
// handled in full when encountered; other nodes are descended into.
func (v *factVisitor) walk(n sitter.Node) error {
	switch n.Type() {
	case kindImportStatement:
		return v.visitImport(n)
	case kindExportStatement:
		return v.visitExport(n)
	default:
		count := n.NamedChildCount()
		for idx := range count {
			err := v.walk(n.NamedChild(idx))
			if err != nil {
				return err
			}
		}

		return nil
	}
}

// visitImport opens an ImportRecord for the declaration and appends one
// Specifier per binding, preserving source order.
func (v *factVisitor) visitImport(n sitter.Node) error {
	src := n.ChildByFieldName(fieldSource)
	if src.IsNull() {
		// TS import-equals and bare "import" fragments carry no module
		// string; nothing to record.
		return nil
	}

	v.builder.OpenImport(unquote(src.Content(v.source)))

	count := n.NamedChildCount()
	for idx := range count {
		child := n.NamedChild(idx)
		if child.Type() == kindImportClause {
			err := v.visitImportClause(child)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *factVisitor) visitImportClause(clause sitter.Node) error {
	count := clause.NamedChildCount()
	for idx := range count {
		child := clause.NamedChild(idx)

		switch child.Type() {
		case kindIdentifier:
			err := v.builder.AddSpecifier(modfacts.SourceNameDefault, child.Content(v.source))
			if err != nil {
				return err
			}
		case kindNamespaceImport:
			local := firstNamedOfType(child, kindIdentifier)
			if !local.IsNull() {
				err := v.builder.AddSpecifier(modfacts.SourceNameNamespace, local.Content(v.source))
				if err != nil {
					return err
				}
			}
		case kindNamedImports:
			err := v.visitNamedImports(child)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *factVisitor) visitNamedImports(named sitter.Node) error {
	count := named.NamedChildCount()
	for idx := range count {
		spec := named.NamedChild(idx)
		if spec.Type() != kindImportSpecifier {
			continue
		}

		name := spec.ChildByFieldName(fieldName)
		if name.IsNull() {
			continue
		}

		sourceName := unquote(name.Content(v.source))
		localName := sourceName

		alias := spec.ChildByFieldName(fieldAlias)
		if !alias.IsNull() {
			localName = alias.Content(v.source)
		}

		err := v.builder.AddSpecifier(sourceName, localName)
		if err != nil {
			return err
		}
	}

	return nil
}

// visitExport handles every export form: named re-exports (which also open
// an ImportRecord so the traversal follows the referenced module), export
// clauses, declared names, and default exports.
func (v *factVisitor) visitExport(n sitter.Node) error {
	src := n.ChildByFieldName(fieldSource)
	if !src.IsNull() {
		// Re-export: the referenced module joins the import graph.
		v.builder.OpenImport(unquote(src.Content(v.source)))
	}

	if isDefaultExport(n) {
		return v.builder.SetDefaultExport(defaultExportName(n, v.source))
	}

	count := n.NamedChildCount()
	for idx := range count {
		child := n.NamedChild(idx)

		var err error

		switch {
		case child.Type() == kindExportClause:
			err = v.visitExportClause(child)
		case child.Type() == kindNamespaceExport:
			// export * as ns from "m" exposes the namespace name.
			local := firstNamedOfType(child, kindIdentifier)
			if !local.IsNull() {
				v.builder.AddExport(local.Content(v.source))
			}
		case declarationKinds[child.Type()]:
			name := child.ChildByFieldName(fieldName)
			if !name.IsNull() {
				v.builder.AddExport(name.Content(v.source))
			}
		case variableDeclarationKinds[child.Type()]:
			v.visitVariableDeclaration(child)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (v *factVisitor) visitExportClause(clause sitter.Node) error {
	count := clause.NamedChildCount()
	for idx := range count {
		spec := clause.NamedChild(idx)
		if spec.Type() != kindExportSpecifier {
			continue
		}

		name := spec.ChildByFieldName(fieldName)
		if name.IsNull() {
			continue
		}

		exported := unquote(name.Content(v.source))

		alias := spec.ChildByFieldName(fieldAlias)
		if !alias.IsNull() {
			exported = unquote(alias.Content(v.source))
		}

		// export { x as default } is a default export in clause form.
		if exported == kindDefaultKeyword {
			err := v.builder.SetDefaultExport(unquote(name.Content(v.source)))
			if err != nil {
				return err
			}

			continue
		}

		v.builder.AddExport(exported)
	}

	return nil
}

func (v *factVisitor) visitVariableDeclaration(decl sitter.Node) {
	count := decl.NamedChildCount()
	for idx := range count {
		declarator := decl.NamedChild(idx)
		if declarator.Type() != kindVariableDeclarator {
			continue
		}

		name := declarator.ChildByFieldName(fieldName)
		if name.IsNull() {
			continue
		}

		// Destructuring patterns export each bound identifier.
		if name.Type() == kindIdentifier {
			v.builder.AddExport(name.Content(v.source))

			continue
		}

		v.collectPatternIdentifiers(name)
	}
}

// collectPatternIdentifiers appends every identifier bound by a
// destructuring pattern, in document order.
func (v *factVisitor) collectPatternIdentifiers(n sitter.Node) {
	if n.Type() == kindIdentifier || n.Type() == "shorthand_property_identifier_pattern" {
		v.builder.AddExport(n.Content(v.source))

		return
	}

	count := n.NamedChildCount()
	for idx := range count {
		v.collectPatternIdentifiers(n.NamedChild(idx))
	}
}

// isDefaultExport reports whether the export statement carries the
// "default" keyword, which appears as an anonymous child token.
func isDefaultExport(n sitter.Node) bool {
	count := n.ChildCount()
	for idx := range count {
		child := n.Child(idx)
		if !child.IsNamed() && child.Type() == kindDefaultKeyword {
			return true
		}
	}

	return false
}

// defaultExportName resolves the name recorded for a default export: the
// declared function/class name when present, the identifier text when the
// exported value is a plain identifier, and the "default" sentinel for
// anonymous values.
func defaultExportName(n sitter.Node, source []byte) string {
	decl := n.ChildByFieldName(fieldDeclaration)
	if !decl.IsNull() {
		name := decl.ChildByFieldName(fieldName)
		if !name.IsNull() {
			return name.Content(source)
		}
	}

	value := n.ChildByFieldName(fieldValue)
	if !value.IsNull() && value.Type() == kindIdentifier {
		return value.Content(source)
	}

	return kindDefaultKeyword
}

// firstNamedOfType returns the first named child with the given kind, or a
// null node.
func firstNamedOfType(n sitter.Node, kind string) sitter.Node {
	count := n.NamedChildCount()
	for idx := range count {
		child := n.NamedChild(idx)
		if child.Type() == kind {
			return child
		}
	}

	return sitter.Node{}
}

// unquote strips the surrounding quote characters from a string literal's
// source text.
func unquote(s string) string {
	return strings.Trim(s, "\"'`")
}
