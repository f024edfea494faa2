// Copyright © 2025 The ruff authors

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomasr8/ruff/config"
	"github.com/tomasr8/ruff/lint"
)

var (
	checkJSON     bool
	checkChecks   string
	checkListAll  bool
	checkExcludes []string
)

var checkCmd = &cobra.Command{
	Use:     "check [flags] [files...]",
	Aliases: []string{"lint"},
	Short:   "Run static analysis checks on Python stub files",
	Long: `Run static analysis checks on Python stub files.

The linter reports likely mistakes in .pyi stubs, similar to "go vet" for
Go. Each check is an independent analyzer that examines the parsed syntax
tree and reports diagnostics carrying a stable rule code.

With no files, reads from stdin. With files, analyzes each file and reports
all findings to stderr. The pattern ./... expands to all .pyi and .py files
under a directory.

Exit codes:
  0  No problems found
  1  One or more problems were reported
  2  Bad invocation (invalid flags, unreadable files)

Settings are read from the nearest pyproject.toml's [tool.ruff] table;
the --checks and --exclude flags take precedence over it.

To suppress a specific diagnostic, add a comment on the same line:
  Point = NamedTuple("Point", [("x", int)])  # noqa: PYI028

To suppress all checks on a line:
  Point = NamedTuple("Point", [("x", int)])  # noqa

Available checks (use --checks to select specific ones):
` + lint.AnalyzerDoc() + `
Examples:
  ruff check file.pyi                            # Check a single file
  ruff check stubs/...                           # Check a directory tree
  ruff check --json file.pyi                     # Output diagnostics as JSON
  ruff check --checks=PYI028 file.pyi            # Run only specific checks
  ruff check --list                              # List available checks
  ruff check --exclude='build/*' ./...           # Exclude paths by pattern
  cat file.pyi | ruff check                      # Check from stdin`,
	Run: func(cmd *cobra.Command, args []string) {
		if checkListAll {
			for _, code := range lint.AnalyzerCodes() {
				fmt.Println(code)
			}
			return
		}

		fileCfg := discoverConfig(args)
		analyzers, err := selectAnalyzers(checkAnalyzers, fileCfg, checkChecks)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ruff check: %v\n", err)
			os.Exit(2)
		}

		l := &lint.Linter{Analyzers: analyzers}

		if len(args) == 0 {
			if err := checkStdin(l); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			return
		}

		excludes := checkExcludes
		if fileCfg != nil {
			excludes = append(excludes, fileCfg.Exclude...)
		}
		expanded, err := expandArgs(args, excludes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		var allDiags []lint.Diagnostic
		for _, path := range expanded {
			diags, err := checkFile(l, path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			allDiags = append(allDiags, diags...)
		}

		if len(allDiags) == 0 {
			return
		}

		if checkJSON {
			if err := lint.FormatJSON(os.Stdout, allDiags); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		} else {
			renderLintDiagnostics(allDiags)
		}
		os.Exit(1)
	},
}

// checkAnalyzers is the analyzer set the check command starts from, before
// project config and the --checks flag narrow it down.
var checkAnalyzers = lint.DefaultAnalyzers()

// discoverConfig loads the pyproject.toml nearest to the first checked
// path (or the working directory for stdin). Config errors are fatal:
// a project file that cannot be parsed should not be silently ignored.
func discoverConfig(args []string) *config.Config {
	dir := "."
	if len(args) > 0 {
		dir = strings.TrimSuffix(args[0], "/...")
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			dir = dirOf(dir)
		}
	}
	cfg, _, err := config.Discover(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ruff check: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// selectAnalyzers applies, in order of increasing precedence, the project
// file's select and ignore lists and the --checks flag. Selectors match
// either rule codes or analyzer names; an unknown selector is an error.
func selectAnalyzers(all []*lint.Analyzer, fileCfg *config.Config, checksFlag string) ([]*lint.Analyzer, error) {
	analyzers := all

	if fileCfg != nil {
		if len(fileCfg.Select) > 0 {
			selected, err := filterAnalyzers(analyzers, fileCfg.Select)
			if err != nil {
				return nil, err
			}
			analyzers = selected
		}
		if len(fileCfg.Ignore) > 0 {
			analyzers = rejectAnalyzers(analyzers, fileCfg.Ignore)
		}
	}

	if checksFlag != "" {
		selected, err := filterAnalyzers(all, strings.Split(checksFlag, ","))
		if err != nil {
			return nil, err
		}
		analyzers = selected
	}
	return analyzers, nil
}

func filterAnalyzers(analyzers []*lint.Analyzer, selectors []string) ([]*lint.Analyzer, error) {
	want := make(map[string]bool)
	for _, s := range selectors {
		want[strings.TrimSpace(s)] = true
	}
	var filtered []*lint.Analyzer
	for _, a := range analyzers {
		if want[a.Code] || want[a.Name] {
			filtered = append(filtered, a)
			delete(want, a.Code)
			delete(want, a.Name)
		}
	}
	for s := range want {
		return nil, fmt.Errorf("unknown check: %s", s)
	}
	return filtered, nil
}

func rejectAnalyzers(analyzers []*lint.Analyzer, selectors []string) []*lint.Analyzer {
	drop := make(map[string]bool)
	for _, s := range selectors {
		drop[strings.TrimSpace(s)] = true
	}
	var kept []*lint.Analyzer
	for _, a := range analyzers {
		if drop[a.Code] || drop[a.Name] {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

func checkStdin(l *lint.Linter) error {
	src, err := readStdin()
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	diags, err := l.LintFile(src, "<stdin>")
	if err != nil {
		return err
	}
	if len(diags) == 0 {
		return nil
	}
	if checkJSON {
		if err := lint.FormatJSON(os.Stdout, diags); err != nil {
			return err
		}
	} else {
		renderLintDiagnostics(diags)
	}
	os.Exit(1)
	return nil
}

func checkFile(l *lint.Linter, path string) ([]lint.Diagnostic, error) {
	src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l.LintFile(src, path)
}

func readStdin() ([]byte, error) {
	return os.ReadFile("/dev/stdin")
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output diagnostics as JSON.")
	checkCmd.Flags().StringVar(&checkChecks, "checks", "",
		"Comma-separated list of checks to run, by code or name (default: all).")
	checkCmd.Flags().BoolVar(&checkListAll, "list", false,
		"List available checks and exit.")
	checkCmd.Flags().StringArrayVar(&checkExcludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")
}
