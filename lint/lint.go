// Copyright © 2025 The ruff authors

// Package lint provides static analysis for Python stub files.
//
// The linter is modeled after go vet: each check is an independent Analyzer
// that receives a parsed syntax tree plus a per-file semantic model and
// reports diagnostics. The framework handles parsing, building the model,
// running analyzers, collecting results, and formatting output.
//
// Analyzers are composable and extensible — embedders can define custom
// checks alongside the built-in set.
package lint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomasr8/ruff/analysis"
	"github.com/tomasr8/ruff/python"
)

// SyntaxErrorCode is the rule code attached to parse error diagnostics.
const SyntaxErrorCode = "E999"

// Severity indicates the severity level of a lint diagnostic.
type Severity int

const (
	severityUnset Severity = iota // unexported zero sentinel for default detection
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as a JSON string.
// An unset severity (zero value) is marshaled as "warning".
func (s Severity) MarshalJSON() ([]byte, error) {
	if s == severityUnset {
		return json.Marshal("warning")
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes a severity from a JSON string.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity: %q", str)
	}
	return nil
}

// Analyzer defines a single lint check.
type Analyzer struct {
	// Code is the stable rule code reported to tooling (e.g. "PYI028").
	Code string

	// Name is a short identifier for this check (e.g. "named-tuple-assignment").
	Name string

	// Doc is a human-readable description. The first line is a short summary.
	Doc string

	// Severity is the default severity for diagnostics from this analyzer.
	Severity Severity

	// Run executes the check. It should call pass.Report() for each finding.
	Run func(pass *Pass) error
}

// Pass provides context to a running analyzer.
type Pass struct {
	// Analyzer is the currently running check.
	Analyzer *Analyzer

	// Filename is the source file being analyzed.
	Filename string

	// Tree is the parsed source file.
	Tree *python.Tree

	// Semantics is the per-file semantic model. It is built before any
	// analyzer runs and is read-only for the duration of the pass.
	Semantics *analysis.SemanticModel

	// diagnostics collects reported findings.
	diagnostics []Diagnostic
}

// Report records a diagnostic finding.
func (p *Pass) Report(d Diagnostic) {
	d.Analyzer = p.Analyzer.Name
	d.Code = p.Analyzer.Code
	if d.Severity == severityUnset {
		d.Severity = p.Analyzer.Severity
	}
	p.diagnostics = append(p.diagnostics, d)
}

// Reportf is a convenience for reporting a diagnostic at a source range.
func (p *Pass) Reportf(rng python.Range, format string, args ...interface{}) {
	p.Report(Diagnostic{
		Pos:     Position{Line: rng.Start.Line, Col: rng.Start.Col},
		EndPos:  Position{Line: rng.End.Line, Col: rng.End.Col},
		Message: fmt.Sprintf(format, args...),
	})
}

// ReportFix reports a diagnostic at a source range carrying the title of
// a suggested fix.
func (p *Pass) ReportFix(rng python.Range, message, fix string) {
	p.Report(Diagnostic{
		Pos:     Position{Line: rng.Start.Line, Col: rng.Start.Col},
		EndPos:  Position{Line: rng.End.Line, Col: rng.End.Col},
		Message: message,
		Fix:     fix,
	})
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	// Pos is the source location of the problem.
	Pos Position `json:"pos"`

	// EndPos is the end of the highlighted range (exclusive column).
	EndPos Position `json:"end_pos"`

	// Code is the rule code of the check that found this problem.
	Code string `json:"code"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`

	// Analyzer is the name of the check that found this problem.
	Analyzer string `json:"analyzer"`

	// Severity is the severity level of the diagnostic.
	Severity Severity `json:"severity"`

	// Fix is the title of an available automated correction, if any.
	Fix string `json:"fix,omitempty"`

	// Notes are optional hint text lines for the user.
	Notes []string `json:"notes,omitempty"`
}

// Position identifies a location in source code.
type Position struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col,omitempty"`
}

// String returns the position in file:line format.
func (p Position) String() string {
	if p.Line == 0 {
		return p.File
	}
	if p.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// String returns the diagnostic in go vet style: file:line:col: message (CODE)
// with optional note lines appended.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s: %s (%s)", d.Pos, d.Message, d.Code)
	for _, n := range d.Notes {
		s += "\n  = note: " + n
	}
	return s
}

// Linter runs a set of analyzers over source files.
type Linter struct {
	Analyzers []*Analyzer

	// Tracer, when non-nil, records one span per analyzer run.
	Tracer trace.Tracer
}

// LintFile analyzes a single source file and returns all diagnostics.
// Parsing is fault tolerant: syntax errors become diagnostics with code
// E999 and the remaining checks still run over the healthy parts.
func (l *Linter) LintFile(source []byte, filename string) ([]Diagnostic, error) {
	return l.LintFileCtx(context.Background(), source, filename)
}

// LintFileCtx is LintFile with a caller-supplied context, used for
// cancellation and trace propagation.
func (l *Linter) LintFileCtx(ctx context.Context, source []byte, filename string) ([]Diagnostic, error) {
	tree, err := python.ParseCtx(ctx, source, filename)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return l.LintTree(ctx, tree, analysis.Analyze(tree))
}

// LintTree runs the analyzers over an already parsed file with a prebuilt
// semantic model. Callers that cache parse results (the language server)
// use this entry point directly.
func (l *Linter) LintTree(ctx context.Context, tree *python.Tree, semantics *analysis.SemanticModel) ([]Diagnostic, error) {
	var all []Diagnostic

	for _, parseErr := range tree.Errors {
		all = append(all, Diagnostic{
			Pos:      Position{File: tree.Filename, Line: parseErr.Span.Start.Line, Col: parseErr.Span.Start.Col},
			EndPos:   Position{Line: parseErr.Span.End.Line, Col: parseErr.Span.End.Col},
			Code:     SyntaxErrorCode,
			Message:  parseErr.Msg,
			Analyzer: "syntax-error",
			Severity: SeverityError,
		})
	}

	for _, analyzer := range l.Analyzers {
		pass := &Pass{
			Analyzer:  analyzer,
			Filename:  tree.Filename,
			Tree:      tree,
			Semantics: semantics,
		}
		if err := l.runAnalyzer(ctx, pass); err != nil {
			return nil, fmt.Errorf("%s: analyzer %s: %w", tree.Filename, analyzer.Name, err)
		}
		// Set file on diagnostics that don't have one
		for i := range pass.diagnostics {
			if pass.diagnostics[i].Pos.File == "" {
				pass.diagnostics[i].Pos.File = tree.Filename
			}
		}
		all = append(all, pass.diagnostics...)
	}

	// Filter suppressed diagnostics (# noqa comments)
	all = filterSuppressed(all, tree)

	// Sort by file, then line, then column
	sort.Slice(all, func(i, j int) bool {
		if all[i].Pos.File != all[j].Pos.File {
			return all[i].Pos.File < all[j].Pos.File
		}
		if all[i].Pos.Line != all[j].Pos.Line {
			return all[i].Pos.Line < all[j].Pos.Line
		}
		return all[i].Pos.Col < all[j].Pos.Col
	})

	return all, nil
}

// runAnalyzer executes one analyzer, wrapping it in a trace span when a
// tracer is configured.
func (l *Linter) runAnalyzer(ctx context.Context, pass *Pass) error {
	if l.Tracer == nil {
		return pass.Analyzer.Run(pass)
	}
	_, span := l.Tracer.Start(ctx, "lint."+pass.Analyzer.Name)
	defer span.End()
	span.SetAttributes(analyzerAttributes(pass)...)
	return pass.Analyzer.Run(pass)
}

// FormatText writes diagnostics in go vet text format.
func FormatText(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String()) //nolint:errcheck // best-effort output to writer
	}
}

// FormatJSON writes diagnostics as JSON.
func FormatJSON(w io.Writer, diags []Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}

// AnalyzerNames returns a sorted list of all default analyzer names.
func AnalyzerNames() []string {
	analyzers := DefaultAnalyzers()
	names := make([]string, len(analyzers))
	for i, a := range analyzers {
		names[i] = a.Name
	}
	sort.Strings(names)
	return names
}

// AnalyzerCodes returns a sorted list of all default analyzer codes.
func AnalyzerCodes() []string {
	analyzers := DefaultAnalyzers()
	codes := make([]string, len(analyzers))
	for i, a := range analyzers {
		codes[i] = a.Code
	}
	sort.Strings(codes)
	return codes
}

// AnalyzerDoc returns a formatted documentation string for all analyzers.
// Summaries are word-wrapped for terminal display.
func AnalyzerDoc() string {
	var b strings.Builder
	for _, a := range DefaultAnalyzers() {
		fmt.Fprintf(&b, "  %s (%s)\n", a.Code, a.Name)
		summary := strings.Split(a.Doc, "\n")[0]
		for _, line := range strings.Split(wordwrap.String(summary, 72), "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
