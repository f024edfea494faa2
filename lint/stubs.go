// Copyright © 2025 The ruff authors

package lint

import (
	"github.com/tomasr8/ruff/analysis"
	"github.com/tomasr8/ruff/python"
)

// typingModules guards checks that look for typing factory calls: when
// neither the typing module nor its backport was ever imported, no call in
// the file can denote a typing symbol and the check exits without paying
// for name resolution.
const typingModules = analysis.ModuleTyping | analysis.ModuleTypingExtensions

// AnalyzerNamedTupleAssignment flags NamedTuple classes built through the
// runtime factory call instead of a class declaration.
var AnalyzerNamedTupleAssignment = &Analyzer{
	Code: "PYI028",
	Name: "named-tuple-assignment",
	Doc: "Flag uses of the `NamedTuple` factory call in stubs.\n\n" +
		"`Point = NamedTuple(\"Point\", [(\"x\", int)])` creates the same tuple subclass " +
		"as the class-based form, but type checkers get far less information out of it. " +
		"In a stub, declare the class instead:\n\n" +
		"    class Point(NamedTuple):\n        x: int",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		if !pass.Semantics.SeenModule(typingModules) {
			return nil
		}
		python.Calls(pass.Tree.Root(), func(call python.Node) {
			callee := call.Callee()
			qn, ok := pass.Semantics.ResolveQualifiedName(callee)
			if !ok {
				return
			}
			if !matchesTypingSymbol(qn, "NamedTuple") {
				return
			}
			pass.ReportFix(callee.Span(),
				"Use class-based syntax for NamedTuples",
				"Use class-based syntax for NamedTuples")
		})
		return nil
	},
}

// AnalyzerTypedDictFunctional flags TypedDict classes built through the
// functional call form.
var AnalyzerTypedDictFunctional = &Analyzer{
	Code: "UP013",
	Name: "convert-typed-dict-functional-to-class",
	Doc: "Flag uses of the `TypedDict` functional call form.\n\n" +
		"`Movie = TypedDict(\"Movie\", {\"title\": str})` is equivalent to the class-based " +
		"form but harder to read and extend. Declare the class instead.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		if !pass.Semantics.SeenModule(typingModules) {
			return nil
		}
		python.Calls(pass.Tree.Root(), func(call python.Node) {
			callee := call.Callee()
			qn, ok := pass.Semantics.ResolveQualifiedName(callee)
			if !ok {
				return
			}
			if !matchesTypingSymbol(qn, "TypedDict") {
				return
			}
			pass.ReportFix(callee.Span(),
				"Convert TypedDict functional syntax to class syntax",
				"Convert to class syntax")
		})
		return nil
	},
}

// AnalyzerCollectionsNamedTuple flags the untyped collections.namedtuple
// factory in stubs.
var AnalyzerCollectionsNamedTuple = &Analyzer{
	Code: "PYI024",
	Name: "collections-named-tuple",
	Doc: "Flag uses of `collections.namedtuple` in stubs.\n\n" +
		"`typing.NamedTuple` is the typed version of `collections.namedtuple`: it lets " +
		"each field carry an annotation, so type checkers can analyze uses precisely.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		if !pass.Semantics.SeenModule(analysis.ModuleCollections) {
			return nil
		}
		python.Calls(pass.Tree.Root(), func(call python.Node) {
			callee := call.Callee()
			qn, ok := pass.Semantics.ResolveQualifiedName(callee)
			if !ok {
				return
			}
			if !qn.Matches("collections", "namedtuple") {
				return
			}
			pass.ReportFix(callee.Span(),
				"Use `typing.NamedTuple` instead of `collections.namedtuple`",
				"Replace with `typing.NamedTuple`")
		})
		return nil
	},
}

// AnalyzerDocstringInStub flags docstrings in stub files.
var AnalyzerDocstringInStub = &Analyzer{
	Code: "PYI021",
	Name: "docstring-in-stub",
	Doc: "Flag docstrings in stubs.\n\n" +
		"Stub files only describe interfaces; documentation belongs on the runtime " +
		"implementation, where doc tooling picks it up.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		root := pass.Tree.Root()
		reportDocstring(pass, root)
		python.Walk(root, func(n python.Node, _ int) {
			switch n.Kind() {
			case python.KindFunctionDef, python.KindClassDef:
				reportDocstring(pass, n.Body())
			}
		})
		return nil
	},
}

// AnalyzerPassStatementStubBody flags bodies consisting of `pass`.
var AnalyzerPassStatementStubBody = &Analyzer{
	Code: "PYI009",
	Name: "pass-statement-stub-body",
	Doc: "Flag stub bodies containing `pass` instead of `...`.\n\n" +
		"The conventional placeholder body in stubs is the ellipsis literal. `pass` " +
		"works, but every stub in typeshed spells it `...`.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		python.Walk(pass.Tree.Root(), func(n python.Node, _ int) {
			switch n.Kind() {
			case python.KindFunctionDef, python.KindClassDef:
			default:
				return
			}
			body := n.Body()
			stmts := statements(body)
			if len(stmts) != 1 || stmts[0].Kind() != python.KindPassStatement {
				return
			}
			pass.ReportFix(stmts[0].Span(),
				"Empty body should contain `...`, not `pass`",
				"Replace `pass` with `...`")
		})
		return nil
	},
}

// matchesTypingSymbol reports whether a qualified name denotes the given
// symbol from typing or typing_extensions. The recognized paths form a
// closed set: the symbol under either module, or the bare unqualified
// name. Matching is exact over the whole segment sequence — a user-defined
// `mypkg.NamedTuple` never matches.
func matchesTypingSymbol(qn analysis.QualifiedName, symbol string) bool {
	return qn.Matches("typing", symbol) ||
		qn.Matches("typing_extensions", symbol) ||
		qn.Matches(symbol)
}

// reportDocstring reports a PYI021 diagnostic when the first statement of
// body is a string expression.
func reportDocstring(pass *Pass, body python.Node) {
	stmts := statements(body)
	if len(stmts) == 0 || stmts[0].Kind() != python.KindExprStatement {
		return
	}
	stmt := stmts[0]
	if stmt.NumNamedChildren() != 1 {
		return
	}
	str := stmt.NamedChild(0)
	if str.Kind() != python.KindString {
		return
	}
	pass.ReportFix(str.Span(),
		"Docstrings should not be included in stubs",
		"Remove docstring")
}

// statements returns the named statement children of a block or module
// node, skipping interleaved comments.
func statements(block python.Node) []python.Node {
	var stmts []python.Node
	for _, child := range block.NamedChildren() {
		if child.Kind() == python.KindComment {
			continue
		}
		stmts = append(stmts, child)
	}
	return stmts
}

// DefaultAnalyzers returns the built-in set of lint checks.
func DefaultAnalyzers() []*Analyzer {
	return []*Analyzer{
		AnalyzerPassStatementStubBody,
		AnalyzerDocstringInStub,
		AnalyzerCollectionsNamedTuple,
		AnalyzerNamedTupleAssignment,
		AnalyzerTypedDictFunctional,
	}
}
