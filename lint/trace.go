// Copyright © 2025 The ruff authors

package lint

import (
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// analyzerAttributes builds the span attributes for one analyzer run.
func analyzerAttributes(pass *Pass) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.CodeFilepath(pass.Filename),
		semconv.CodeFunction(pass.Analyzer.Name),
		attribute.String("lint.code", pass.Analyzer.Code),
	}
}
