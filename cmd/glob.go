// Copyright © 2025 The ruff authors

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// expandArgs expands arguments, resolving patterns ending with "/..." to
// all Python files found recursively under the given directory, and drops
// anything matching an exclude pattern. Non-pattern arguments pass through
// subject only to exclusion.
func expandArgs(args []string, excludes []string) ([]string, error) {
	matchers, err := compileExcludes(excludes)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, arg := range args {
		if dir, ok := strings.CutSuffix(arg, "/..."); ok {
			if dir == "" {
				dir = "."
			}
			files, err := findPythonFiles(dir)
			if err != nil {
				return nil, fmt.Errorf("expanding %s: %w", arg, err)
			}
			for _, f := range files {
				if !excluded(matchers, f) {
					out = append(out, f)
				}
			}
		} else if !excluded(matchers, arg) {
			out = append(out, arg)
		}
	}
	return out, nil
}

func findPythonFiles(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".pyi", ".py":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", p, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}

// excluded matches a path against the exclude set. Patterns apply to the
// full slash-separated path and to the base name, so both "build/*" and
// "_typeshed.pyi" work as expected.
func excluded(matchers []glob.Glob, path string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, g := range matchers {
		if g.Match(slashed) || g.Match(base) {
			return true
		}
	}
	return false
}

func dirOf(path string) string {
	return filepath.Dir(path)
}
