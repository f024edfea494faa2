// Copyright © 2025 The ruff authors

package lint

import (
	"strings"

	"github.com/tomasr8/ruff/python"
)

// filterSuppressed removes diagnostics on lines with # noqa comments.
// A bare `# noqa` suppresses every check on its line; `# noqa: PYI028`
// suppresses only the listed codes (analyzer names are accepted too).
func filterSuppressed(diags []Diagnostic, tree *python.Tree) []Diagnostic {
	noqaLines := collectNoqa(tree)
	if len(noqaLines) == 0 {
		return diags
	}

	var filtered []Diagnostic
	for _, d := range diags {
		directive, ok := noqaLines[d.Pos.Line]
		if !ok {
			filtered = append(filtered, d)
			continue
		}
		// Empty directive = suppress all
		if directive == "" {
			continue
		}
		suppressed := false
		for _, code := range strings.Split(directive, ",") {
			code = strings.TrimSpace(code)
			if strings.EqualFold(code, d.Code) || code == d.Analyzer {
				suppressed = true
				break
			}
		}
		if !suppressed {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// collectNoqa maps source lines to their noqa directive: "" for a blanket
// suppression, otherwise the comma-separated code list.
func collectNoqa(tree *python.Tree) map[int]string {
	lines := make(map[int]string)
	for _, comment := range tree.Comments() {
		text := strings.TrimSpace(comment.Text())
		text = strings.TrimLeft(text, "#")
		text = strings.TrimSpace(text)

		rest, ok := cutPrefixFold(text, "noqa")
		if !ok {
			continue
		}
		line := comment.Span().Start.Line
		if rest == "" {
			lines[line] = ""
			continue
		}
		if strings.HasPrefix(rest, ":") {
			lines[line] = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
		}
	}
	return lines
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding, so that
// `# NOQA` works the same as `# noqa`.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
