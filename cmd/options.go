// Copyright © 2025 The ruff authors

package cmd

import "github.com/tomasr8/ruff/lint"

// Option configures an exported command factory (LSPCommand).
type Option func(*cmdConfig)

type cmdConfig struct {
	analyzers []*lint.Analyzer
}

// WithAnalyzers replaces the default analyzer set. Embedders use this to
// run a custom or extended collection of checks.
func WithAnalyzers(analyzers []*lint.Analyzer) Option {
	return func(c *cmdConfig) { c.analyzers = analyzers }
}

// resolveAnalyzers returns the analyzer set from the options, falling
// back to the defaults.
func (c *cmdConfig) resolveAnalyzers() []*lint.Analyzer {
	if c.analyzers != nil {
		return c.analyzers
	}
	return lint.DefaultAnalyzers()
}
