// Package ipath implements the textual and structural address format used
// to reference nodes inside a loaded ink container graph: an ordered
// sequence of fragments, each either a positional index or a name, with an
// optional leading marker for relative paths.
package ipath

import (
	"strconv"
	"strings"
)

// Fragment is one segment of a Path: either a non-negative positional Index
// or a Name. Exactly one of the two is meaningful, selected by IsIndex.
type Fragment struct {
	IsIndex bool
	Index   int
	Name    string
}

// IndexFragment builds a positional fragment.
func IndexFragment(n int) Fragment {
	return Fragment{IsIndex: true, Index: n}
}

// NameFragment builds a named fragment. The special name "^" means "parent"
// to a resolver; Fragment itself attaches no meaning to it.
func NameFragment(s string) Fragment {
	return Fragment{Name: s}
}

// String renders a single fragment the way it appears in a textual path.
func (f Fragment) String() string {
	if f.IsIndex {
		return strconv.Itoa(f.Index)
	}
	return f.Name
}

// Equal reports whether two fragments address the same thing.
func (f Fragment) Equal(o Fragment) bool {
	if f.IsIndex != o.IsIndex {
		return false
	}
	if f.IsIndex {
		return f.Index == o.Index
	}
	return f.Name == o.Name
}

// Path is an immutable, ordered sequence of fragments plus a relative flag.
// Paths are value types: copy and compare freely.
type Path struct {
	fragments  []Fragment
	isRelative bool
}

// New builds a Path from fragments. The slice is copied so callers may reuse
// or mutate the one they passed in.
func New(isRelative bool, fragments ...Fragment) Path {
	cp := make([]Fragment, len(fragments))
	copy(cp, fragments)
	return Path{fragments: cp, isRelative: isRelative}
}

// Parse parses a textual path. An empty string yields the zero Path and
// false. A leading "." marks the path relative and is stripped before
// splitting the remainder on ".". Each token that parses as a non-negative
// decimal integer becomes an Index fragment; every other token (including
// "^", "g-0", "$r1") becomes a Name fragment. No character validation is
// performed on names.
func Parse(text string) (Path, bool) {
	if text == "" {
		return Path{}, false
	}

	relative := false
	if strings.HasPrefix(text, ".") {
		relative = true
		text = text[1:]
	}

	if text == "" {
		// A lone "." is a relative path with no fragments.
		return Path{isRelative: true}, true
	}

	parts := strings.Split(text, ".")
	fragments := make([]Fragment, 0, len(parts))
	for _, part := range parts {
		if n, err := strconv.Atoi(part); err == nil && n >= 0 && isDecimal(part) {
			fragments = append(fragments, IndexFragment(n))
			continue
		}
		fragments = append(fragments, NameFragment(part))
	}

	return Path{fragments: fragments, isRelative: relative}, true
}

// isDecimal rejects forms strconv.Atoi would otherwise accept but that are
// not plain non-negative decimal tokens, e.g. "+3" or leading/trailing space.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String is the inverse of Parse: for any Path p obtained via Parse,
// Parse(p.String()) reconstructs an equal Path.
func (p Path) String() string {
	parts := make([]string, len(p.fragments))
	for i, f := range p.fragments {
		parts[i] = f.String()
	}
	joined := strings.Join(parts, ".")
	if p.isRelative {
		return "." + joined
	}
	return joined
}

// IsRelative reports whether the path is relative to a caller-supplied base.
func (p Path) IsRelative() bool {
	return p.isRelative
}

// Len returns the number of fragments.
func (p Path) Len() int {
	return len(p.fragments)
}

// At returns the fragment at index i and whether i was in range.
func (p Path) At(i int) (Fragment, bool) {
	if i < 0 || i >= len(p.fragments) {
		return Fragment{}, false
	}
	return p.fragments[i], true
}

// First returns the first fragment, if any.
func (p Path) First() (Fragment, bool) {
	return p.At(0)
}

// Last returns the final fragment, if any.
func (p Path) Last() (Fragment, bool) {
	return p.At(len(p.fragments) - 1)
}

// Fragments returns a copy of the fragment slice for iteration.
func (p Path) Fragments() []Fragment {
	cp := make([]Fragment, len(p.fragments))
	copy(cp, p.fragments)
	return cp
}

// Equal reports structural equality: same relativity, same fragments in
// order.
func (p Path) Equal(o Path) bool {
	if p.isRelative != o.isRelative {
		return false
	}
	if len(p.fragments) != len(o.fragments) {
		return false
	}
	for i := range p.fragments {
		if !p.fragments[i].Equal(o.fragments[i]) {
			return false
		}
	}
	return true
}

// Key returns the path's textual form, suitable as a map key. Paths are
// hashable by their textual representation.
func (p Path) Key() string {
	return p.String()
}
