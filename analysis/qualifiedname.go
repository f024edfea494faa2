// Copyright © 2025 The ruff authors

package analysis

import "strings"

// QualifiedName is the canonical dotted-path origin of a resolved symbol:
// an ordered, non-empty sequence of identifier segments such as
// ["typing", "NamedTuple"]. It is independent of local aliasing — however
// the file spelled the reference, the segments name where the symbol was
// originally defined.
type QualifiedName struct {
	segments []string
}

// Segments returns the ordered identifier segments.
func (q QualifiedName) Segments() []string {
	return q.segments
}

// String returns the dotted form, e.g. "typing.NamedTuple".
func (q QualifiedName) String() string {
	return strings.Join(q.segments, ".")
}

// Matches reports whether the qualified name equals exactly the given
// segment sequence. Matching is whole-sequence equality, never a suffix
// or substring check, so an unrelated symbol that merely ends in the same
// name cannot match.
func (q QualifiedName) Matches(segments ...string) bool {
	return equalSegments(q.segments, segments)
}
