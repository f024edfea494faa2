// Copyright © 2025 The ruff authors

package cmd

import (
	"fmt"
	"os"

	"github.com/tomasr8/ruff/diagnostic"
	"github.com/tomasr8/ruff/lint"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// renderLintDiagnostics prints lint findings to stderr as annotated source
// snippets.
func renderLintDiagnostics(diags []lint.Diagnostic) {
	r := newRenderer()
	for _, d := range diags {
		if err := r.Render(os.Stderr, lintDiagToDiagnostic(d)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
}

func lintDiagToDiagnostic(d lint.Diagnostic) diagnostic.Diagnostic {
	span := diagnostic.Span{
		File: d.Pos.File,
		Line: d.Pos.Line,
		Col:  d.Pos.Col,
	}
	// Multi-line ranges fall back to end-of-token detection on the
	// first line.
	if d.EndPos.Line == d.Pos.Line {
		span.EndCol = d.EndPos.Col
	}
	out := diagnostic.Diagnostic{
		Severity: lintSeverity(d.Severity),
		Code:     d.Code,
		Message:  d.Message,
		Spans:    []diagnostic.Span{span},
		Notes:    d.Notes,
	}
	if d.Fix != "" {
		out.Help = append(out.Help, d.Fix)
	}
	if d.Code != "" && d.Code != lint.SyntaxErrorCode {
		out.Notes = append(out.Notes,
			fmt.Sprintf("suppress with `# noqa: %s` on this line", d.Code))
	}
	return out
}

func lintSeverity(s lint.Severity) diagnostic.Severity {
	switch s {
	case lint.SeverityError:
		return diagnostic.SeverityError
	case lint.SeverityInfo:
		return diagnostic.SeverityNote
	default:
		return diagnostic.SeverityWarning
	}
}
