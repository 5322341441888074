package graph

import (
	"testing"

	"github.com/aledsdavies/inkrt/ink"
	"github.com/aledsdavies/inkrt/internal/storyfixture"
	"github.com/aledsdavies/inkrt/ipath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) ipath.Path {
	t.Helper()
	p, ok := ipath.Parse(s)
	require.True(t, ok)
	return p
}

func TestResolveAbsoluteByIndex(t *testing.T) {
	g := New(storyfixture.Story())
	obj, ok := g.Resolve(mustParse(t, "0.0"))
	require.True(t, ok)
	v, ok := obj.(*ink.Value)
	require.True(t, ok)
	assert.Equal(t, "hello", v.Str)
}

func TestResolveAbsoluteByName(t *testing.T) {
	g := New(storyfixture.Story())
	obj, ok := g.Resolve(mustParse(t, "one.s.0"))
	require.True(t, ok)
	v, ok := obj.(*ink.Value)
	require.True(t, ok)
	assert.Equal(t, "world", v.Str)
}

func TestResolveMissingNameFails(t *testing.T) {
	g := New(storyfixture.Story())
	_, ok := g.Resolve(mustParse(t, "missing"))
	assert.False(t, ok)
}

func TestResolveEmptyPathIsRoot(t *testing.T) {
	root := storyfixture.Story()
	g := New(root)
	p, ok := ipath.Parse(".")
	require.True(t, ok)
	obj, ok := g.ResolveFrom(root, p)
	require.True(t, ok)
	assert.Same(t, root, obj)
}

func TestResolveFromRelativeWithinBase(t *testing.T) {
	root := storyfixture.Story()
	g := New(root)
	knotOne, ok := root.FindByName("one")
	require.True(t, ok)

	obj, ok := g.ResolveFrom(knotOne, mustParse(t, ".s.0"))
	require.True(t, ok)
	v, ok := obj.(*ink.Value)
	require.True(t, ok)
	assert.Equal(t, "world", v.Str)
}

func TestResolveFromRelativeParentStep(t *testing.T) {
	root := storyfixture.Story()
	g := New(root)
	knotOne, ok := root.FindByName("one")
	require.True(t, ok)
	stitch, ok := knotOne.FindByName("s")
	require.True(t, ok)

	// From the stitch, "^" steps back up to knotOne, then "0" is "hello".
	obj, ok := g.ResolveFrom(stitch, mustParse(t, ".^.0"))
	require.True(t, ok)
	v, ok := obj.(*ink.Value)
	require.True(t, ok)
	assert.Equal(t, "hello", v.Str)
}

func TestResolveFromRelativeParentPastRootFails(t *testing.T) {
	root := storyfixture.Story()
	g := New(root)
	_, ok := g.ResolveFrom(root, mustParse(t, ".^"))
	assert.False(t, ok)
}

func TestResolveIndexOutOfRangeFails(t *testing.T) {
	g := New(storyfixture.Story())
	_, ok := g.Resolve(mustParse(t, "5"))
	assert.False(t, ok)
}

func TestResolveIntoNonContainerFails(t *testing.T) {
	g := New(storyfixture.Story())
	// "one.0" is a leaf Value; indexing further into it must fail.
	_, ok := g.Resolve(mustParse(t, "one.0.0"))
	assert.False(t, ok)
}

func TestPathToRoundTripsThroughResolve(t *testing.T) {
	root := storyfixture.Story()
	knotOne, ok := root.FindByName("one")
	require.True(t, ok)
	stitch, ok := knotOne.FindByName("s")
	require.True(t, ok)

	p, ok := PathTo(root, stitch)
	require.True(t, ok)

	g := New(root)
	obj, ok := g.Resolve(p)
	require.True(t, ok)
	assert.Same(t, stitch, obj)
}

func TestPathToRootIsEmpty(t *testing.T) {
	root := storyfixture.Story()
	p, ok := PathTo(root, root)
	require.True(t, ok)
	assert.Equal(t, 0, p.Len())
}

func TestPathToUnreachableContainerFails(t *testing.T) {
	root := storyfixture.Story()
	other := ink.NewContainer()
	_, ok := PathTo(root, other)
	assert.False(t, ok)
}
