// Copyright © 2025 The ruff authors

package analysis

import (
	"strings"

	"github.com/tomasr8/ruff/python"
)

// addImport processes `import a.b.c` and `import x as y` statements.
func (m *SemanticModel) addImport(stmt python.Node) {
	for _, child := range stmt.NamedChildren() {
		switch child.Kind() {
		case python.KindDottedName:
			path := child.Text()
			m.markSeen(path)
			// `import a.b.c` binds only the top-level name `a`.
			segments := strings.Split(path, ".")
			m.bind(segments[0], binding{kind: bindImport, origin: segments[:1]})
		case python.KindAliasedImport:
			name := child.Field("name")
			alias := child.Field("alias")
			if name.IsZero() || alias.IsZero() {
				continue
			}
			path := name.Text()
			m.markSeen(path)
			m.bind(alias.Text(), binding{kind: bindImport, origin: strings.Split(path, ".")})
		}
	}
}

// addImportFrom processes `from m import n [as a]` statements. Relative
// imports bind nothing: their origin depends on the file's own package
// path, which a single-file model cannot know.
func (m *SemanticModel) addImportFrom(stmt python.Node) {
	module := stmt.NamedChild(0)
	if module.IsZero() || module.Kind() == python.KindRelativeImport {
		return
	}
	path := module.Text()
	m.markSeen(path)
	moduleSegments := strings.Split(path, ".")

	for i := 1; i < stmt.NumNamedChildren(); i++ {
		child := stmt.NamedChild(i)
		switch child.Kind() {
		case python.KindDottedName:
			name := child.Text()
			m.bind(name, binding{kind: bindImport, origin: appendSegment(moduleSegments, name)})
		case python.KindAliasedImport:
			name := child.Field("name")
			alias := child.Field("alias")
			if name.IsZero() || alias.IsZero() {
				continue
			}
			m.bind(alias.Text(), binding{kind: bindImport, origin: appendSegment(moduleSegments, name.Text())})
		case python.KindWildcardImport:
			// `from m import *` binds an unknowable set of names.
		}
	}
}

// addDefinition records a def or class name, plus function parameter
// names, as local bindings.
func (m *SemanticModel) addDefinition(def python.Node) {
	if name := def.Field("name"); !name.IsZero() {
		m.bind(name.Text(), binding{kind: bindLocal})
	}
	if def.Kind() != python.KindFunctionDef {
		return
	}
	params := def.Field("parameters")
	for _, p := range params.NamedChildren() {
		m.bindParameter(p)
	}
}

// bindParameter extracts the bound name from one entry of a parameter
// list. Annotation and default expressions are deliberately not visited:
// `def f(x: NamedTuple)` references NamedTuple, it does not define it.
func (m *SemanticModel) bindParameter(p python.Node) {
	switch p.Kind() {
	case python.KindIdentifier:
		m.bind(p.Text(), binding{kind: bindLocal})
	case "default_parameter", "typed_default_parameter":
		if name := p.Field("name"); name.Kind() == python.KindIdentifier {
			m.bind(name.Text(), binding{kind: bindLocal})
		}
	case "typed_parameter", "list_splat_pattern", "dictionary_splat_pattern":
		if first := p.NamedChild(0); first.Kind() == python.KindIdentifier {
			m.bind(first.Text(), binding{kind: bindLocal})
		}
	}
}

// addAssignmentTargets records assignment target names as local bindings.
// Destructuring targets recurse; attribute and subscript targets do not
// bind a name.
func (m *SemanticModel) addAssignmentTargets(target python.Node) {
	switch target.Kind() {
	case python.KindIdentifier:
		m.bind(target.Text(), binding{kind: bindLocal})
	case "pattern_list", "tuple_pattern", "list_pattern", "tuple", "list":
		for _, child := range target.NamedChildren() {
			m.addAssignmentTargets(child)
		}
	}
}

func (m *SemanticModel) markSeen(path string) {
	m.seen |= recognizeModule(path)
}

func appendSegment(module []string, name string) []string {
	segments := make([]string, 0, len(module)+1)
	segments = append(segments, module...)
	return append(segments, name)
}
