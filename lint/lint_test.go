// Copyright © 2025 The ruff authors

package lint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// lintSource runs all default analyzers on the given source and returns diagnostics.
func lintSource(t *testing.T, source string) []Diagnostic {
	t.Helper()
	l := &Linter{Analyzers: DefaultAnalyzers()}
	diags, err := l.LintFile([]byte(source), "test.pyi")
	require.NoError(t, err)
	return diags
}

// lintCheck runs a single analyzer on the given source.
func lintCheck(t *testing.T, analyzer *Analyzer, source string) []Diagnostic {
	t.Helper()
	l := &Linter{Analyzers: []*Analyzer{analyzer}}
	diags, err := l.LintFile([]byte(source), "test.pyi")
	require.NoError(t, err)
	return diags
}

// assertHasDiag checks that at least one diagnostic contains the given substring.
func assertHasDiag(t *testing.T, diags []Diagnostic, substr string) {
	t.Helper()
	for _, d := range diags {
		if strings.Contains(d.Message, substr) {
			return
		}
	}
	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, d.String())
	}
	t.Errorf("expected diagnostic containing %q, got: %v", substr, msgs)
}

// assertNoDiags checks that there are no diagnostics.
func assertNoDiags(t *testing.T, diags []Diagnostic) {
	t.Helper()
	if len(diags) > 0 {
		var msgs []string
		for _, d := range diags {
			msgs = append(msgs, d.String())
		}
		t.Errorf("expected no diagnostics, got %d: %v", len(diags), msgs)
	}
}

// assertDiagOnLine checks that a diagnostic exists on the given line with the given substring.
func assertDiagOnLine(t *testing.T, diags []Diagnostic, line int, substr string) {
	t.Helper()
	for _, d := range diags {
		if d.Pos.Line == line && strings.Contains(d.Message, substr) {
			return
		}
	}
	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, fmt.Sprintf("line %d: %s", d.Pos.Line, d.Message))
	}
	t.Errorf("expected diagnostic on line %d containing %q, got: %v", line, substr, msgs)
}

// --- Position.String() ---

func TestPosition_String_FileOnly(t *testing.T) {
	p := Position{File: "test.pyi"}
	assert.Equal(t, "test.pyi", p.String())
}

func TestPosition_String_FileLine(t *testing.T) {
	p := Position{File: "test.pyi", Line: 10}
	assert.Equal(t, "test.pyi:10", p.String())
}

func TestPosition_String_FileLineCol(t *testing.T) {
	p := Position{File: "test.pyi", Line: 10, Col: 5}
	assert.Equal(t, "test.pyi:10:5", p.String())
}

// --- Diagnostic.String() ---

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Pos:      Position{File: "test.pyi", Line: 10},
		Message:  "Use class-based syntax for NamedTuples",
		Code:     "PYI028",
		Analyzer: "named-tuple-assignment",
	}
	assert.Equal(t, "test.pyi:10: Use class-based syntax for NamedTuples (PYI028)", d.String())
}

// --- Severity JSON ---

func TestSeverity_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(SeverityError)
	require.NoError(t, err)
	assert.Equal(t, `"error"`, string(data))
}

func TestSeverity_MarshalJSON_UnsetDefaultsToWarning(t *testing.T) {
	var s Severity
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"warning"`, string(data))
}

func TestSeverity_UnmarshalJSON(t *testing.T) {
	var s Severity
	require.NoError(t, json.Unmarshal([]byte(`"info"`), &s))
	assert.Equal(t, SeverityInfo, s)
}

func TestSeverity_UnmarshalJSON_Unknown(t *testing.T) {
	var s Severity
	assert.Error(t, json.Unmarshal([]byte(`"fatal"`), &s))
}

// --- Analyzer error propagation ---

func TestLintFile_AnalyzerError(t *testing.T) {
	errAnalyzer := &Analyzer{
		Name: "fail",
		Doc:  "Always fails.",
		Run: func(pass *Pass) error {
			return fmt.Errorf("intentional failure")
		},
	}
	l := &Linter{Analyzers: []*Analyzer{errAnalyzer}}
	_, err := l.LintFile([]byte("x = 1\n"), "test.pyi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intentional failure")
	assert.Contains(t, err.Error(), "fail")
}

// --- Syntax errors ---

func TestLintFile_SyntaxError(t *testing.T) {
	diags := lintSource(t, "def f(:\n")
	require.NotEmpty(t, diags)
	assert.Equal(t, SyntaxErrorCode, diags[0].Code)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Equal(t, "test.pyi", diags[0].Pos.File)
}

func TestLintFile_SyntaxErrorDoesNotStopChecks(t *testing.T) {
	// The broken def should not prevent the factory call below from
	// being reported.
	source := "from typing import NamedTuple\n" +
		"def f(:\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintSource(t, source)
	assertHasDiag(t, diags, "class-based syntax")
}

// --- noqa suppression ---

func TestNoqa_Blanket(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])  # noqa\n"
	diags := lintSource(t, source)
	assertNoDiags(t, diags)
}

func TestNoqa_SpecificCode(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])  # noqa: PYI028\n"
	diags := lintSource(t, source)
	assertNoDiags(t, diags)
}

func TestNoqa_OtherCodeDoesNotSuppress(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])  # noqa: PYI024\n"
	diags := lintSource(t, source)
	assertHasDiag(t, diags, "class-based syntax")
}

func TestNoqa_CaseInsensitive(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])  # NOQA: pyi028\n"
	diags := lintSource(t, source)
	assertNoDiags(t, diags)
}

func TestNoqa_AnalyzerName(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])  # noqa: named-tuple-assignment\n"
	diags := lintSource(t, source)
	assertNoDiags(t, diags)
}

func TestNoqa_OnlySuppressesItsOwnLine(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])  # noqa\n" +
		"Other = NamedTuple(\"Other\", [(\"y\", int)])\n"
	diags := lintSource(t, source)
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].Pos.Line)
}

// --- Ordering ---

func TestLintFile_DiagnosticsSortedByPosition(t *testing.T) {
	source := "from typing import NamedTuple, TypedDict\n" +
		"def f() -> None:\n" +
		"    pass\n" +
		"Movie = TypedDict(\"Movie\", {\"title\": str})\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintSource(t, source)
	require.GreaterOrEqual(t, len(diags), 3)
	for i := 1; i < len(diags); i++ {
		prev, cur := diags[i-1], diags[i]
		if prev.Pos.Line == cur.Pos.Line {
			assert.LessOrEqual(t, prev.Pos.Col, cur.Pos.Col)
		} else {
			assert.Less(t, prev.Pos.Line, cur.Pos.Line)
		}
	}
}

// --- JSON output ---

func TestFormatJSON_RoundTrip(t *testing.T) {
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	diags := lintSource(t, source)
	require.Len(t, diags, 1)

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, diags))

	var decoded []Diagnostic
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "PYI028", decoded[0].Code)
	assert.Equal(t, diags[0].Pos, decoded[0].Pos)
	assert.Equal(t, SeverityWarning, decoded[0].Severity)
}

func TestFormatText(t *testing.T) {
	diags := []Diagnostic{{
		Pos:     Position{File: "a.pyi", Line: 2, Col: 9},
		Code:    "PYI028",
		Message: "Use class-based syntax for NamedTuples",
	}}
	var buf bytes.Buffer
	FormatText(&buf, diags)
	assert.Equal(t, "a.pyi:2:9: Use class-based syntax for NamedTuples (PYI028)\n", buf.String())
}

// --- Analyzer metadata ---

func TestAnalyzerCodes_Sorted(t *testing.T) {
	codes := AnalyzerCodes()
	assert.Contains(t, codes, "PYI028")
	for i := 1; i < len(codes); i++ {
		assert.LessOrEqual(t, codes[i-1], codes[i])
	}
}

func TestAnalyzerDoc_ContainsAllChecks(t *testing.T) {
	doc := AnalyzerDoc()
	for _, a := range DefaultAnalyzers() {
		assert.Contains(t, doc, a.Code)
		assert.Contains(t, doc, a.Name)
	}
}

// --- Tracing ---

func TestLintFile_TracesAnalyzerRuns(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	l := &Linter{
		Analyzers: DefaultAnalyzers(),
		Tracer:    tp.Tracer("lint-test"),
	}
	source := "from typing import NamedTuple\n" +
		"Point = NamedTuple(\"Point\", [(\"x\", int)])\n"
	_, err := l.LintFile([]byte(source), "test.pyi")
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, len(DefaultAnalyzers()))
	names := make(map[string]bool)
	for _, s := range spans {
		names[s.Name] = true
	}
	assert.True(t, names["lint.named-tuple-assignment"])
}
