// Copyright © 2025 The ruff authors

package analysis

import "strings"

// ModuleSet is a bitset over the closed enumeration of modules the linter
// recognizes. Tracking is limited to this fixed set; arbitrary imports are
// still resolvable by name but do not register in the seen-module guard.
type ModuleSet uint16

const (
	ModuleTyping ModuleSet = 1 << iota
	ModuleTypingExtensions
	ModuleCollections
	ModuleCollectionsABC
	ModuleOS
	ModuleSys
	ModuleRe
	ModuleBuiltins
)

// ContainsAny reports whether the two sets intersect.
func (s ModuleSet) ContainsAny(other ModuleSet) bool {
	return s&other != 0
}

func (s ModuleSet) String() string {
	names := []struct {
		m    ModuleSet
		name string
	}{
		{ModuleTyping, "typing"},
		{ModuleTypingExtensions, "typing_extensions"},
		{ModuleCollections, "collections"},
		{ModuleCollectionsABC, "collections.abc"},
		{ModuleOS, "os"},
		{ModuleSys, "sys"},
		{ModuleRe, "re"},
		{ModuleBuiltins, "builtins"},
	}
	var parts []string
	for _, n := range names {
		if s.ContainsAny(n.m) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "<none>"
	}
	return strings.Join(parts, "|")
}

// recognizeModule maps a dotted import path to the modules it marks as
// seen. A dotted path marks its top-level module; `collections.abc`
// additionally marks its own entry.
func recognizeModule(path string) ModuleSet {
	if path == "collections.abc" {
		return ModuleCollections | ModuleCollectionsABC
	}
	top := path
	if i := strings.IndexByte(path, '.'); i >= 0 {
		top = path[:i]
	}
	switch top {
	case "typing":
		return ModuleTyping
	case "typing_extensions":
		return ModuleTypingExtensions
	case "collections":
		return ModuleCollections
	case "os":
		return ModuleOS
	case "sys":
		return ModuleSys
	case "re":
		return ModuleRe
	case "builtins":
		return ModuleBuiltins
	}
	return 0
}
