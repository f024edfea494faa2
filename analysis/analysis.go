// Copyright © 2025 The ruff authors

// Package analysis builds a per-file semantic model for Python source.
//
// The model records which well-known modules a file imports and how local
// names map back to their canonical origins, resolving import aliasing
// (`import typing_extensions as te`) and from-imports (`from typing import
// NamedTuple as NT`). It is designed to be queried by lint analyzers: the
// two entry points are SeenModule, a cheap guard over the file's import
// set, and ResolveQualifiedName, which traces an expression to the dotted
// path it was originally defined under.
//
// A model is scoped to a single file. It is populated once by Analyze and
// read-only afterwards, so analyzers may share it freely within a file.
package analysis

import (
	"github.com/tomasr8/ruff/python"
)

// SemanticModel holds the per-file name resolution state.
type SemanticModel struct {
	seen     ModuleSet
	bindings map[string]binding
}

type bindingKind int

const (
	// bindImport is a name bound by an import statement to a canonical
	// dotted origin.
	bindImport bindingKind = iota

	// bindLocal is a name defined in the file itself (def, class,
	// assignment target, or function parameter). Collection is
	// file-global and not scope-aware, which is conservative: a local
	// definition anywhere in the file prevents resolution of that name,
	// so the model may miss a finding but never fabricates an origin.
	bindLocal

	// bindAmbiguous is a name bound more than once with conflicting
	// meanings. Resolution always fails for such names.
	bindAmbiguous
)

type binding struct {
	kind   bindingKind
	origin []string
}

// Analyze builds the semantic model for a parsed file. The returned model
// is immutable; analyzers hold it for the duration of the file's checks.
func Analyze(tree *python.Tree) *SemanticModel {
	m := &SemanticModel{bindings: make(map[string]binding)}
	python.Walk(tree.Root(), func(n python.Node, _ int) {
		switch n.Kind() {
		case python.KindImport:
			m.addImport(n)
		case python.KindImportFrom:
			m.addImportFrom(n)
		case python.KindFunctionDef, python.KindClassDef:
			m.addDefinition(n)
		case python.KindAssignment:
			m.addAssignmentTargets(n.Field("left"))
		}
	})
	return m
}

// SeenModule reports whether at least one module in the set was imported
// anywhere in the file. Analyzers use it as a short-circuit before paying
// for qualified name resolution.
func (m *SemanticModel) SeenModule(set ModuleSet) bool {
	return m.seen.ContainsAny(set)
}

// ResolveQualifiedName traces an expression to the canonical dotted path
// of the symbol it denotes, independent of local import aliasing.
//
// A bare identifier resolves through the import table; an identifier never
// bound in the file resolves to the single-segment name itself, mirroring
// how unbound names behave in stub contexts. An attribute chain resolves
// only when its ultimate base is a bound import. Locally defined names,
// rebound names, relative imports, and dynamic expressions do not resolve;
// that is a normal outcome, not an error.
func (m *SemanticModel) ResolveQualifiedName(expr python.Node) (QualifiedName, bool) {
	switch expr.Kind() {
	case python.KindIdentifier:
		name := expr.Text()
		b, ok := m.bindings[name]
		if !ok {
			// Unbound name: resolve to the bare single-segment path.
			return QualifiedName{segments: []string{name}}, true
		}
		if b.kind != bindImport {
			return QualifiedName{}, false
		}
		return QualifiedName{segments: b.origin}, true
	case python.KindAttribute:
		segments, ok := m.resolveAttribute(expr)
		if !ok {
			return QualifiedName{}, false
		}
		return QualifiedName{segments: segments}, true
	}
	return QualifiedName{}, false
}

// resolveAttribute resolves an attribute chain like te.NamedTuple or
// collections.abc.Callable. The ultimate base must be an identifier bound
// by an import, so a stray `typing.X` in a file that never imported typing
// stays unresolved.
func (m *SemanticModel) resolveAttribute(expr python.Node) ([]string, bool) {
	obj := expr.Field("object")
	attr := expr.Field("attribute")
	if attr.IsZero() {
		return nil, false
	}

	var base []string
	switch obj.Kind() {
	case python.KindIdentifier:
		b, ok := m.bindings[obj.Text()]
		if !ok || b.kind != bindImport {
			return nil, false
		}
		base = b.origin
	case python.KindAttribute:
		var ok bool
		base, ok = m.resolveAttribute(obj)
		if !ok {
			return nil, false
		}
	default:
		return nil, false
	}

	segments := make([]string, 0, len(base)+1)
	segments = append(segments, base...)
	return append(segments, attr.Text()), true
}

// bind records a binding for name, degrading to ambiguous when the name
// was already bound with a different meaning.
func (m *SemanticModel) bind(name string, b binding) {
	if name == "" {
		return
	}
	prev, ok := m.bindings[name]
	if !ok {
		m.bindings[name] = b
		return
	}
	if prev.kind == b.kind && equalSegments(prev.origin, b.origin) {
		return
	}
	m.bindings[name] = binding{kind: bindAmbiguous}
}

func equalSegments(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
