// Package storyfixture builds small container trees and JSON documents
// shared by loader, graph, and callstack tests, so each package's test file
// does not reimplement the same handful of fixtures.
package storyfixture

import (
	"fmt"

	"github.com/aledsdavies/inkrt/ink"
)

// Leaves builds root = [A, [B, C, [D]], E] (uppercase = leaf string
// values), a plain depth-first tree with no named containers.
func Leaves() (root *ink.Container, byName map[string]*ink.Value) {
	a := ink.NewStringValue("A")
	b := ink.NewStringValue("B")
	c := ink.NewStringValue("C")
	d := ink.NewStringValue("D")
	e := ink.NewStringValue("E")

	innerD := ink.NewContainer()
	innerD.AddChild(d)

	mid := ink.NewContainer()
	mid.AddChild(b)
	mid.AddChild(c)
	mid.AddChild(innerD)

	root = ink.NewContainer()
	root.AddChild(a)
	root.AddChild(mid)
	root.AddChild(e)

	return root, map[string]*ink.Value{"A": a, "B": b, "C": c, "D": d, "E": e}
}

// Knots builds a small named-container tree for path resolution: root has
// named child "a" which has named child "b" whose index-1 child is a
// Divert to Name("t").
func Knots() *ink.Container {
	root := ink.NewContainer()

	b := ink.NewContainer()
	b.SetName("b")
	b.AddChild(ink.NewStringValue("hello"))
	target := ink.NameTarget("t")
	b.AddChild(ink.NewFunctionDivert(target))

	a := ink.NewContainer()
	a.SetName("a")
	a.AddChild(b)

	root.AddChild(a)
	return root
}

// Story builds a tiny loaded story:
//
//	root
//	  0: knot ("one")
//	       0: "hello"
//	       1: stitch ("s")
//	            0: "world"
//	  1: knot ("two")
func Story() *ink.Container {
	root := ink.NewContainer()

	stitch := ink.NewContainer()
	stitch.SetName("s")
	stitch.AddChild(ink.NewStringValue("world"))

	knotOne := ink.NewContainer()
	knotOne.SetName("one")
	knotOne.AddChild(ink.NewStringValue("hello"))
	knotOne.AddChild(stitch)

	knotTwo := ink.NewContainer()
	knotTwo.SetName("two")

	root.AddChild(knotOne)
	root.AddChild(knotTwo)
	return root
}

// MinimalDocumentJSON is a well-formed single-container document, wrapping
// root with the given JSON array body.
func MinimalDocumentJSON(version uint32, rootArrayJSON string) []byte {
	return []byte(fmt.Sprintf(`{"inkVersion": %d, "root": %s, "listDefs": {}}`, version, rootArrayJSON))
}
