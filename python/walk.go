// Copyright © 2025 The ruff authors

package python

// Walk calls fn for every named node in the tree, depth-first.
// The root is visited at depth 0.
func Walk(root Node, fn func(n Node, depth int)) {
	walkNode(root, 0, fn)
}

func walkNode(n Node, depth int, fn func(Node, int)) {
	if n.IsZero() {
		return
	}
	fn(n, depth)
	for i := 0; i < n.NumNamedChildren(); i++ {
		walkNode(n.NamedChild(i), depth+1, fn)
	}
}

// WalkKind calls fn for every named node of the given kind.
func WalkKind(root Node, kind string, fn func(n Node)) {
	Walk(root, func(n Node, _ int) {
		if n.Kind() == kind {
			fn(n)
		}
	})
}

// Calls calls fn for every call expression in the tree.
func Calls(root Node, fn func(call Node)) {
	WalkKind(root, KindCall, fn)
}
