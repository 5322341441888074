package ipath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"0.g-0.2.$r1",
		".^.s",
		".^.c",
		"a.b.1",
		".",
	}

	for _, text := range cases {
		t.Run(text, func(t *testing.T) {
			p, ok := Parse(text)
			require.True(t, ok)
			assert.Equal(t, text, p.String())

			p2, ok2 := Parse(p.String())
			require.True(t, ok2)
			assert.True(t, p.Equal(p2), cmp.Diff(p, p2, cmp.AllowUnexported(Path{})))
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, ok := Parse("")
	assert.False(t, ok)
}

func TestParseFragments(t *testing.T) {
	p, ok := Parse("0.g-0.2.$r1")
	require.True(t, ok)
	require.Equal(t, 4, p.Len())

	assert.Equal(t, IndexFragment(0), p.Fragments()[0])
	assert.Equal(t, NameFragment("g-0"), p.Fragments()[1])
	assert.Equal(t, IndexFragment(2), p.Fragments()[2])
	assert.Equal(t, NameFragment("$r1"), p.Fragments()[3])
	assert.False(t, p.IsRelative())
}

func TestParseRelative(t *testing.T) {
	p, ok := Parse(".^.s")
	require.True(t, ok)
	assert.True(t, p.IsRelative())

	first, ok := p.First()
	require.True(t, ok)
	assert.Equal(t, NameFragment("^"), first)

	last, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, NameFragment("s"), last)
}

func TestEqual(t *testing.T) {
	a, _ := Parse("a.b.1")
	b, _ := Parse("a.b.1")
	c, _ := Parse(".a.b.1")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestKeyIsTextualForm(t *testing.T) {
	p, _ := Parse("a.b.1")
	assert.Equal(t, p.String(), p.Key())
}
