package ink

import (
	"testing"

	"github.com/aledsdavies/inkrt/ipath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParsePath(t *testing.T, text string) ipath.Path {
	t.Helper()
	p, ok := ipath.Parse(text)
	require.True(t, ok)
	return p
}

func TestContainerAddChildAndFindByName(t *testing.T) {
	root := NewContainer()
	a := NewContainer()
	a.SetName("a")
	root.AddChild(NewIntValue(1))
	root.AddChild(a)

	found, ok := root.FindByName("a")
	require.True(t, ok)
	assert.Same(t, a, found)

	_, ok = root.FindByName("missing")
	assert.False(t, ok)
}

func TestContainerPrependPreservesOrder(t *testing.T) {
	c := NewContainer()
	c.AddChild(NewIntValue(3))
	c.Prepend([]RuntimeObject{NewIntValue(1), NewIntValue(2)})

	require.Equal(t, 3, c.Len())
	v0, _ := c.ChildAt(0)
	v1, _ := c.ChildAt(1)
	v2, _ := c.ChildAt(2)
	assert.Equal(t, int32(1), v0.(*Value).Int)
	assert.Equal(t, int32(2), v1.(*Value).Int)
	assert.Equal(t, int32(3), v2.(*Value).Int)
}

func TestContainerCountFlagsRoundTrip(t *testing.T) {
	c := NewContainer()
	c.SetCountFlags(CountFlagVisits | CountFlagCountAtStartOnly)

	assert.True(t, c.VisitsShouldBeCounted())
	assert.False(t, c.TurnIndexShouldBeCounted())
	assert.True(t, c.CountAtStartOnly())
	assert.Equal(t, byte(CountFlagVisits|CountFlagCountAtStartOnly), c.CountFlags())
}

func TestContainerNamedContent(t *testing.T) {
	root := NewContainer()
	a := NewContainer()
	a.SetName("a")
	b := NewContainer()
	b.SetName("b")
	anon := NewContainer()

	root.AddChild(a)
	root.AddChild(anon)
	root.AddChild(b)

	named := root.NamedContent()
	assert.Len(t, named, 2)
	assert.Same(t, a, named["a"])
	assert.Same(t, b, named["b"])

	ordered := root.NamedOnlyContent()
	require.Len(t, ordered, 2)
	assert.Same(t, a, ordered[0])
	assert.Same(t, b, ordered[1])
}
