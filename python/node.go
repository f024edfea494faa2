// Copyright © 2025 The ruff authors

package python

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Node kinds from the tree-sitter Python grammar that analyzers inspect.
const (
	KindModule         = "module"
	KindImport         = "import_statement"
	KindImportFrom     = "import_from_statement"
	KindAliasedImport  = "aliased_import"
	KindDottedName     = "dotted_name"
	KindRelativeImport = "relative_import"
	KindWildcardImport = "wildcard_import"
	KindCall           = "call"
	KindAttribute      = "attribute"
	KindIdentifier     = "identifier"
	KindAssignment     = "assignment"
	KindExprStatement  = "expression_statement"
	KindFunctionDef    = "function_definition"
	KindClassDef       = "class_definition"
	KindDecoratedDef   = "decorated_definition"
	KindBlock          = "block"
	KindString         = "string"
	KindPassStatement  = "pass_statement"
	KindComment        = "comment"

	kindError = "ERROR"
)

// Position is a 1-based source location.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Range covers a contiguous region of source. End is exclusive in the
// usual editor sense: it points one past the last character.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// String returns the start of the range in line:col form.
func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start.Line, r.Start.Col)
}

// Node is a typed view over a tree-sitter syntax node. The zero value is
// invalid; accessors return zero Nodes for absent children, which callers
// detect with IsZero.
type Node struct {
	ts  *sitter.Node
	src []byte
}

// IsZero reports whether the node is absent.
func (n Node) IsZero() bool {
	return n.ts == nil
}

// Kind returns the grammar node type, e.g. "call" or "identifier".
func (n Node) Kind() string {
	if n.ts == nil {
		return ""
	}
	return n.ts.Type()
}

// Text returns the source text covered by the node.
func (n Node) Text() string {
	if n.ts == nil {
		return ""
	}
	return n.ts.Content(n.src)
}

// Span returns the 1-based source range of the node.
func (n Node) Span() Range {
	if n.ts == nil {
		return Range{}
	}
	return spanOf(n.ts)
}

func spanOf(ts *sitter.Node) Range {
	start := ts.StartPoint()
	end := ts.EndPoint()
	return Range{
		Start: Position{Line: int(start.Row) + 1, Col: int(start.Column) + 1},
		End:   Position{Line: int(end.Row) + 1, Col: int(end.Column) + 1},
	}
}

// Field returns the child occupying the named grammar field, e.g. the
// "function" field of a call node. Returns a zero Node when unset.
func (n Node) Field(name string) Node {
	if n.ts == nil {
		return Node{}
	}
	child := n.ts.ChildByFieldName(name)
	if child == nil {
		return Node{}
	}
	return Node{ts: child, src: n.src}
}

// NumNamedChildren returns the number of named (non-punctuation) children.
func (n Node) NumNamedChildren() int {
	if n.ts == nil {
		return 0
	}
	return int(n.ts.NamedChildCount())
}

// NamedChild returns the i-th named child, or a zero Node out of range.
func (n Node) NamedChild(i int) Node {
	if n.ts == nil || i < 0 || i >= int(n.ts.NamedChildCount()) {
		return Node{}
	}
	return Node{ts: n.ts.NamedChild(i), src: n.src}
}

// NamedChildren returns all named children in order.
func (n Node) NamedChildren() []Node {
	count := n.NumNamedChildren()
	children := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, n.NamedChild(i))
	}
	return children
}

// Parent returns the parent node, or a zero Node at the root.
func (n Node) Parent() Node {
	if n.ts == nil || n.ts.Parent() == nil {
		return Node{}
	}
	return Node{ts: n.ts.Parent(), src: n.src}
}

// Callee returns the function sub-expression of a call node.
// Returns a zero Node when n is not a call.
func (n Node) Callee() Node {
	if n.Kind() != KindCall {
		return Node{}
	}
	return n.Field("function")
}

// Body returns the block node holding a function or class body.
// Returns a zero Node for other kinds.
func (n Node) Body() Node {
	switch n.Kind() {
	case KindFunctionDef, KindClassDef:
		return n.Field("body")
	}
	return Node{}
}
