// Package graph resolves ipath.Path values against the loaded ink.Container
// tree: the story document as a navigable graph rather than a flat object
// list.
package graph

import (
	"github.com/aledsdavies/inkrt/ink"
	"github.com/aledsdavies/inkrt/ipath"
)

// Graph wraps a loaded root container and resolves paths against it.
//
// ink.Container carries no parent pointer: the walk rule for a Name
// fragment that means "go to parent" has nowhere to go from a bare
// container. Graph resolves this by computing the path on the fly,
// tracking the chain of containers visited during a single walk rather
// than storing parent links on the shared, immutable tree.
type Graph struct {
	root *ink.Container
}

// New wraps root for path resolution. root is never copied or mutated.
func New(root *ink.Container) *Graph {
	return &Graph{root: root}
}

// Root returns the graph's root container.
func (g *Graph) Root() *ink.Container {
	return g.root
}

// Resolve walks p from the root container.
func (g *Graph) Resolve(p ipath.Path) (ink.RuntimeObject, bool) {
	return g.ResolveFrom(g.root, p)
}

// ResolveFrom walks p starting at base. An absolute path ignores base and
// walks from the graph's root; a relative path (leading ".") walks from
// base, with a leading "^" fragment stepping up to base's enclosing
// container in the chain built during this walk.
func (g *Graph) ResolveFrom(base *ink.Container, p ipath.Path) (ink.RuntimeObject, bool) {
	if p.Len() == 0 {
		if p.IsRelative() {
			return base, true
		}
		return g.root, true
	}

	var chain []*ink.Container
	var cur ink.RuntimeObject
	if p.IsRelative() {
		chain = buildChain(g.root, base)
		if chain == nil {
			return nil, false
		}
		cur = base
	} else {
		chain = []*ink.Container{g.root}
		cur = g.root
	}

	for i := 0; i < p.Len(); i++ {
		frag, _ := p.At(i)

		if !frag.IsIndex && frag.Name == "^" {
			if len(chain) < 2 {
				return nil, false
			}
			chain = chain[:len(chain)-1]
			cur = chain[len(chain)-1]
			continue
		}

		container, ok := cur.(*ink.Container)
		if !ok {
			return nil, false
		}

		child, ok := stepInto(container, frag)
		if !ok {
			return nil, false
		}
		cur = child
		if sub, ok := child.(*ink.Container); ok {
			chain = append(chain, sub)
		}
	}

	return cur, true
}

// stepInto looks up a single fragment within container: by positional index,
// or by named-child lookup.
func stepInto(container *ink.Container, frag ipath.Fragment) (ink.RuntimeObject, bool) {
	if frag.IsIndex {
		return container.ChildAt(frag.Index)
	}
	sub, ok := container.FindByName(frag.Name)
	if !ok {
		return nil, false
	}
	return sub, true
}

// buildChain returns the chain of containers from root down to (and
// including) target, or nil if target is not reachable from root by
// identity. This computes the path on the fly: rather than storing a
// parent pointer on every Container, a relative walk first recovers
// target's ancestry by searching the tree once.
func buildChain(root, target *ink.Container) []*ink.Container {
	if root == target {
		return []*ink.Container{root}
	}
	for _, child := range root.Content {
		sub, ok := child.(*ink.Container)
		if !ok {
			continue
		}
		if rest := buildChain(sub, target); rest != nil {
			return append([]*ink.Container{root}, rest...)
		}
	}
	return nil
}

// PathTo computes the absolute, index-only path from root to target, by
// identity. Used by package snapshot to make a call-stack cursor's container
// pointers portable across a capture/restore round trip.
func PathTo(root, target *ink.Container) (ipath.Path, bool) {
	frags, ok := findPathFragments(root, target, nil)
	if !ok {
		return ipath.Path{}, false
	}
	return ipath.New(false, frags...), true
}

func findPathFragments(root, target *ink.Container, prefix []ipath.Fragment) ([]ipath.Fragment, bool) {
	if root == target {
		out := make([]ipath.Fragment, len(prefix))
		copy(out, prefix)
		return out, true
	}
	for i, child := range root.Content {
		sub, ok := child.(*ink.Container)
		if !ok {
			continue
		}
		next := append(append([]ipath.Fragment{}, prefix...), ipath.IndexFragment(i))
		if res, found := findPathFragments(sub, target, next); found {
			return res, true
		}
	}
	return nil, false
}
