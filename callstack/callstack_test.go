package callstack

import (
	"testing"

	"github.com/aledsdavies/inkrt/ink"
	"github.com/aledsdavies/inkrt/internal/storyfixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepDFSOrderAndDepth(t *testing.T) {
	root, leaves := storyfixture.Leaves()
	ctx := NewRuntimeContext(root, ink.PushTunnel)

	type step struct {
		want  *ink.Value
		depth int
	}
	want := []step{
		{leaves["A"], 1},
		{leaves["B"], 2},
		{leaves["C"], 2},
		{leaves["D"], 3},
		{leaves["E"], 1},
	}

	for i, w := range want {
		obj, ok := ctx.Step()
		require.True(t, ok, "step %d should produce a value", i)
		assert.Same(t, w.want, obj, "step %d object", i)
		assert.Equal(t, w.depth, ctx.Depth(), "step %d depth", i)
	}

	_, ok := ctx.Step()
	assert.False(t, ok, "final step should exhaust the frame")
}

func TestStepEmptyContainerExhaustsImmediately(t *testing.T) {
	root := ink.NewContainer()
	ctx := NewRuntimeContext(root, ink.PushTunnel)
	_, ok := ctx.Step()
	assert.False(t, ok)
}

func TestGetDoesNotAdvance(t *testing.T) {
	root, leaves := storyfixture.Leaves()
	ctx := NewRuntimeContext(root, ink.PushTunnel)

	_, ok := ctx.Get()
	assert.False(t, ok, "fresh context has no current before the first Step")

	obj, ok := ctx.Step()
	require.True(t, ok)
	assert.Same(t, leaves["A"], obj)

	got, ok := ctx.Get()
	require.True(t, ok)
	assert.Same(t, leaves["A"], got, "Get should repeat the last Step result")

	got2, ok := ctx.Get()
	require.True(t, ok)
	assert.Same(t, got, got2, "repeated Get must not advance")
}

func TestCallStackInitialState(t *testing.T) {
	root, _ := storyfixture.Leaves()
	cs := New(root)

	assert.Equal(t, 1, cs.ThreadCount())
	assert.Equal(t, 1, cs.Depth())

	ctx, ok := cs.CurrentContext()
	require.True(t, ok)
	assert.Equal(t, ink.PushTunnel, ctx.StackPushType)
}

func TestCallStackStepDrivesCurrentThread(t *testing.T) {
	root, leaves := storyfixture.Leaves()
	cs := New(root)

	obj, ok := cs.Step()
	require.True(t, ok)
	assert.Same(t, leaves["A"], obj)

	cur, ok := cs.CurrentObject()
	require.True(t, ok)
	assert.Same(t, leaves["A"], cur)
}

func TestPushThreadClonesIndependently(t *testing.T) {
	root, leaves := storyfixture.Leaves()
	cs := New(root)

	_, ok := cs.Step()
	require.True(t, ok)

	cs.PushThread()
	require.Equal(t, 2, cs.ThreadCount())

	original, ok := cs.ThreadAt(0)
	require.True(t, ok)
	originalCtx, ok := original.Top()
	require.True(t, ok)
	beforeDepth := originalCtx.Depth()
	beforeObj, _ := originalCtx.Get()

	// Advance the new (current) thread only.
	obj, ok := cs.Step()
	require.True(t, ok)
	assert.Same(t, leaves["B"], obj)

	// The original thread's cursor must be untouched.
	afterObj, ok := originalCtx.Get()
	require.True(t, ok)
	assert.Same(t, beforeObj, afterObj, "cloned thread must not affect original")
	assert.Equal(t, beforeDepth, originalCtx.Depth())
}

func TestPopThreadDiscardsTop(t *testing.T) {
	root, _ := storyfixture.Leaves()
	cs := New(root)
	cs.PushThread()
	require.Equal(t, 2, cs.ThreadCount())
	cs.PopThread()
	assert.Equal(t, 1, cs.ThreadCount())
}

func TestPopThreadLastPanics(t *testing.T) {
	root, _ := storyfixture.Leaves()
	cs := New(root)
	assert.Panics(t, func() { cs.PopThread() })
}

func TestThreadPopIfRespectsPredicate(t *testing.T) {
	root, _ := storyfixture.Leaves()
	initial := NewRuntimeContext(root, ink.PushTunnel)
	th := NewThread(initial)
	other := NewRuntimeContext(root, ink.PushFunction)
	th.Push(other)

	_, popped := th.PopIf(func(rc *RuntimeContext) bool {
		return rc.StackPushType == ink.PushTunnel
	})
	assert.False(t, popped, "predicate false must not pop")
	assert.Equal(t, 2, th.Len())

	ctx, popped := th.PopIf(func(rc *RuntimeContext) bool {
		return rc.StackPushType == ink.PushFunction
	})
	assert.True(t, popped)
	assert.Same(t, other, ctx)
	assert.Equal(t, 1, th.Len())
}

func TestResetReroots(t *testing.T) {
	root, leaves := storyfixture.Leaves()
	ctx := NewRuntimeContext(root, ink.PushTunnel)
	_, _ = ctx.Step()
	_, _ = ctx.Step()
	require.Equal(t, 2, ctx.Depth())

	ctx.Reset(root, -1)
	assert.Equal(t, 1, ctx.Depth())
	obj, ok := ctx.Step()
	require.True(t, ok)
	assert.Same(t, leaves["A"], obj)
}
