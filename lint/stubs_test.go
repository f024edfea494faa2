// Copyright © 2025 The ruff authors

package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- named-tuple-assignment (PYI028) ---

func TestNamedTupleAssignment_Positive_FromImport(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int), (\"y\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	require.Len(t, diags, 1)
	assert.Equal(t, "PYI028", diags[0].Code)
	assert.Equal(t, "Use class-based syntax for NamedTuples", diags[0].Message)
	assert.Equal(t, 2, diags[0].Pos.Line)
	// The diagnostic points at the callee, not the whole statement.
	assert.Equal(t, 9, diags[0].Pos.Col)
}

func TestNamedTupleAssignment_Positive_ModuleAttribute(t *testing.T) {
	source := "import typing\n" +
		"Point = typing.NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	require.Len(t, diags, 1)
	assertDiagOnLine(t, diags, 2, "class-based syntax")
}

func TestNamedTupleAssignment_Positive_ModuleAlias(t *testing.T) {
	source := "import typing as t\n" +
		"Point = t.NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	require.Len(t, diags, 1)
}

func TestNamedTupleAssignment_Positive_SymbolAlias(t *testing.T) {
	source := "from typing import NamedTuple as NT\n" +
		"Point = NT(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	require.Len(t, diags, 1)
}

func TestNamedTupleAssignment_Positive_TypingExtensions(t *testing.T) {
	source := "import typing_extensions\n" +
		"Point = typing_extensions.NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	require.Len(t, diags, 1)
}

func TestNamedTupleAssignment_Positive_BareNameWithTypingImported(t *testing.T) {
	// NamedTuple itself was never imported, but typing was seen, so the
	// unbound bare name is still treated as the typing symbol.
	source := "import typing\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	require.Len(t, diags, 1)
}

func TestNamedTupleAssignment_Positive_NestedCall(t *testing.T) {
	// Calls are matched anywhere in the tree, not only at the top level.
	source := "from typing import NamedTuple\n" +
		"def make():\n" +
		"    return NamedTuple(\"Inner\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].Pos.Line)
}

func TestNamedTupleAssignment_Negative_NoTypingImport(t *testing.T) {
	// Without a typing import the file cannot denote typing.NamedTuple.
	source := "Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	assertNoDiags(t, diags)
}

func TestNamedTupleAssignment_Negative_ClassSyntax(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"class Point(NamedTuple):\n" +
		"    x: int\n" +
		"    y: int\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	assertNoDiags(t, diags)
}

func TestNamedTupleAssignment_Negative_LocalDefinition(t *testing.T) {
	// A local function named NamedTuple shadows the typing symbol.
	source := "import typing\n" +
		"def NamedTuple(name, fields): ...\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	assertNoDiags(t, diags)
}

func TestNamedTupleAssignment_Negative_OtherModuleAttribute(t *testing.T) {
	// mypkg.NamedTuple is not typing.NamedTuple.
	source := "import typing\n" +
		"import mypkg\n" +
		"Point = mypkg.NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	assertNoDiags(t, diags)
}

func TestNamedTupleAssignment_Negative_OtherCalls(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"x = len(\"abc\")\n" +
		"y = dict(a=1)\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	assertNoDiags(t, diags)
}

func TestNamedTupleAssignment_Idempotent(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	first := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	second := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	assert.Equal(t, first, second)
}

func TestNamedTupleAssignment_Fix(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintCheck(t, AnalyzerNamedTupleAssignment, source)
	require.Len(t, diags, 1)
	assert.Equal(t, "Use class-based syntax for NamedTuples", diags[0].Fix)
}

// --- convert-typed-dict-functional-to-class (UP013) ---

func TestTypedDictFunctional_Positive(t *testing.T) {
	source := "from typing import TypedDict\n" +
		"Movie = TypedDict(\"Movie\", {\"title\": str, \"year\": int})\n"
	diags := lintCheck(t, AnalyzerTypedDictFunctional, source)
	require.Len(t, diags, 1)
	assert.Equal(t, "UP013", diags[0].Code)
	assertHasDiag(t, diags, "functional syntax")
}

func TestTypedDictFunctional_Positive_TypingExtensions(t *testing.T) {
	source := "from typing_extensions import TypedDict\n" +
		"Movie = TypedDict(\"Movie\", {\"title\": str})\n"
	diags := lintCheck(t, AnalyzerTypedDictFunctional, source)
	require.Len(t, diags, 1)
}

func TestTypedDictFunctional_Negative_ClassSyntax(t *testing.T) {
	source := "from typing import TypedDict\n" +
		"class Movie(TypedDict):\n" +
		"    title: str\n"
	diags := lintCheck(t, AnalyzerTypedDictFunctional, source)
	assertNoDiags(t, diags)
}

// --- collections-named-tuple (PYI024) ---

func TestCollectionsNamedTuple_Positive_FromImport(t *testing.T) {
	source := "from collections import namedtuple\n" +
		"Point = namedtuple(\"Point\", [\"x\", \"y\"])\n"
	diags := lintCheck(t, AnalyzerCollectionsNamedTuple, source)
	require.Len(t, diags, 1)
	assert.Equal(t, "PYI024", diags[0].Code)
	assertHasDiag(t, diags, "typing.NamedTuple")
}

func TestCollectionsNamedTuple_Positive_ModuleAttribute(t *testing.T) {
	source := "import collections\n" +
		"Point = collections.namedtuple(\"Point\", [\"x\"])\n"
	diags := lintCheck(t, AnalyzerCollectionsNamedTuple, source)
	require.Len(t, diags, 1)
}

func TestCollectionsNamedTuple_Negative_NoImport(t *testing.T) {
	source := "Point = namedtuple(\"Point\", [\"x\"])\n"
	diags := lintCheck(t, AnalyzerCollectionsNamedTuple, source)
	assertNoDiags(t, diags)
}

// --- docstring-in-stub (PYI021) ---

func TestDocstringInStub_Positive_Module(t *testing.T) {
	source := "\"\"\"Module docs.\"\"\"\n" +
		"x: int\n"
	diags := lintCheck(t, AnalyzerDocstringInStub, source)
	require.Len(t, diags, 1)
	assert.Equal(t, "PYI021", diags[0].Code)
	assert.Equal(t, 1, diags[0].Pos.Line)
}

func TestDocstringInStub_Positive_Function(t *testing.T) {
	source := "def f() -> None:\n" +
		"    \"\"\"Docs.\"\"\"\n"
	diags := lintCheck(t, AnalyzerDocstringInStub, source)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Pos.Line)
}

func TestDocstringInStub_Positive_Class(t *testing.T) {
	source := "class C:\n" +
		"    \"\"\"Docs.\"\"\"\n" +
		"    x: int\n"
	diags := lintCheck(t, AnalyzerDocstringInStub, source)
	require.Len(t, diags, 1)
}

func TestDocstringInStub_Negative_NonDocstringString(t *testing.T) {
	// A string that is not the first statement is data, not a docstring.
	source := "x: int\n" +
		"y = \"not a docstring\"\n"
	diags := lintCheck(t, AnalyzerDocstringInStub, source)
	assertNoDiags(t, diags)
}

// --- pass-statement-stub-body (PYI009) ---

func TestPassStatementStubBody_Positive_Function(t *testing.T) {
	source := "def f() -> None:\n" +
		"    pass\n"
	diags := lintCheck(t, AnalyzerPassStatementStubBody, source)
	require.Len(t, diags, 1)
	assert.Equal(t, "PYI009", diags[0].Code)
	assertHasDiag(t, diags, "`...`")
}

func TestPassStatementStubBody_Positive_Class(t *testing.T) {
	source := "class C:\n" +
		"    pass\n"
	diags := lintCheck(t, AnalyzerPassStatementStubBody, source)
	require.Len(t, diags, 1)
}

func TestPassStatementStubBody_Negative_Ellipsis(t *testing.T) {
	source := "def f() -> None: ...\n"
	diags := lintCheck(t, AnalyzerPassStatementStubBody, source)
	assertNoDiags(t, diags)
}

func TestPassStatementStubBody_Negative_NonEmptyBody(t *testing.T) {
	// pass alongside real statements is a different problem, not this one.
	source := "def f() -> None:\n" +
		"    x = 1\n" +
		"    pass\n"
	diags := lintCheck(t, AnalyzerPassStatementStubBody, source)
	assertNoDiags(t, diags)
}

// --- combined runs ---

func TestDefaultAnalyzers_AllHaveCodeNameDoc(t *testing.T) {
	for _, a := range DefaultAnalyzers() {
		assert.NotEmpty(t, a.Code)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Doc)
		assert.NotNil(t, a.Run)
	}
}

func TestDefaultAnalyzers_CleanStubIsClean(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"\n" +
		"class Point(NamedTuple):\n" +
		"    x: int\n" +
		"    y: int\n" +
		"\n" +
		"def origin() -> Point: ...\n"
	diags := lintSource(t, source)
	assertNoDiags(t, diags)
}
