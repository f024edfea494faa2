// Copyright © 2025 The ruff authors

// Package python parses Python source into a syntax tree suitable for
// static analysis.
//
// Parsing is backed by tree-sitter's Python grammar. The package wraps the
// raw tree-sitter nodes in a small typed view (Node) with 1-based source
// positions, and collects syntax errors without aborting the parse so that
// analyzers can still inspect the healthy parts of a broken file.
package python

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	tspython "github.com/smacker/go-tree-sitter/python"
)

// Tree is a parsed Python source file.
type Tree struct {
	// Filename is the name the source was parsed under.
	Filename string

	// Source is the raw file content. Node text is sliced out of it.
	Source []byte

	// Errors holds syntax errors found during parsing. A non-empty list
	// does not invalidate the tree; unaffected regions remain analyzable.
	Errors []ParseError

	tree     *sitter.Tree
	comments []Node
}

// ParseError describes a syntax error at a source location.
type ParseError struct {
	Msg  string
	Span Range
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Col, e.Msg)
}

// Parse parses Python source. The returned tree is fault tolerant: syntax
// errors are recorded in Tree.Errors and the surrounding code still parses.
// A non-nil error is returned only when the parser itself fails (cancelled
// context, out of memory), never for bad input.
func Parse(src []byte, filename string) (*Tree, error) {
	return ParseCtx(context.Background(), src, filename)
}

// ParseCtx is Parse with a caller-supplied context.
func ParseCtx(ctx context.Context, src []byte, filename string) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tspython.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	t := &Tree{
		Filename: filename,
		Source:   src,
		tree:     tree,
	}
	t.collectErrors()
	return t, nil
}

// Root returns the module node of the tree.
func (t *Tree) Root() Node {
	return Node{ts: t.tree.RootNode(), src: t.Source}
}

// Comments returns every comment node in the file, in source order.
// The result is computed once and cached.
func (t *Tree) Comments() []Node {
	if t.comments == nil {
		t.comments = []Node{}
		Walk(t.Root(), func(n Node, _ int) {
			if n.Kind() == KindComment {
				t.comments = append(t.comments, n)
			}
		})
	}
	return t.comments
}

// collectErrors records ERROR and missing nodes as ParseErrors.
func (t *Tree) collectErrors() {
	root := t.tree.RootNode()
	if !root.HasError() {
		return
	}
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		switch {
		case n.IsMissing():
			t.Errors = append(t.Errors, ParseError{
				Msg:  fmt.Sprintf("missing %s", n.Type()),
				Span: spanOf(n),
			})
			return
		case n.Type() == kindError:
			t.Errors = append(t.Errors, ParseError{
				Msg:  "syntax error",
				Span: spanOf(n),
			})
			return
		case !n.HasError():
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			visit(n.Child(i))
		}
	}
	visit(root)
}
