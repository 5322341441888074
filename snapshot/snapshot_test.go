package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/inkrt/callstack"
	"github.com/aledsdavies/inkrt/ink"
	"github.com/aledsdavies/inkrt/internal/storyfixture"
)

func buildTree() *ink.Container {
	root, _ := storyfixture.Leaves()
	return root
}

func TestCaptureRestoreRoundTripsCursorPosition(t *testing.T) {
	root := buildTree()
	cs := callstack.New(root)

	// Advance to D, three levels deep.
	for i := 0; i < 4; i++ {
		_, ok := cs.Step()
		require.True(t, ok)
	}
	before, ok := cs.CurrentObject()
	require.True(t, ok)
	assert.Equal(t, "D", before.(*ink.Value).Str)
	beforeDepth := cs.Depth()

	codec := NewCodec(root)
	data, err := codec.Capture(cs)
	require.NoError(t, err)

	restored, err := codec.Restore(data)
	require.NoError(t, err)

	after, ok := restored.CurrentObject()
	require.True(t, ok)
	assert.Equal(t, before.(*ink.Value).Str, after.(*ink.Value).Str)
	assert.Equal(t, beforeDepth, restored.Depth())

	// Stepping the restored stack continues the original traversal: E next.
	next, ok := restored.Step()
	require.True(t, ok)
	assert.Equal(t, "E", next.(*ink.Value).Str)
}

func TestCaptureRestorePreservesMultipleThreads(t *testing.T) {
	root := buildTree()
	cs := callstack.New(root)
	_, _ = cs.Step() // A

	cs.PushThread()
	_, _ = cs.Step() // B, on the cloned (current) thread

	codec := NewCodec(root)
	data, err := codec.Capture(cs)
	require.NoError(t, err)

	restored, err := codec.Restore(data)
	require.NoError(t, err)
	assert.Equal(t, 2, restored.ThreadCount())

	bottom, ok := restored.ThreadAt(0)
	require.True(t, ok)
	bottomCtx, ok := bottom.Top()
	require.True(t, ok)
	bottomObj, ok := bottomCtx.Get()
	require.True(t, ok)
	assert.Equal(t, "A", bottomObj.(*ink.Value).Str)

	top, ok := restored.ThreadAt(1)
	require.True(t, ok)
	topCtx, ok := top.Top()
	require.True(t, ok)
	topObj, ok := topCtx.Get()
	require.True(t, ok)
	assert.Equal(t, "B", topObj.(*ink.Value).Str)
}

func TestRestoreRejectsGarbageBytes(t *testing.T) {
	codec := NewCodec(buildTree())
	_, err := codec.Restore([]byte{0xff, 0x00, 0x01})
	assert.Error(t, err)
}

func TestCapturedBytesAreStableAcrossRuns(t *testing.T) {
	root := buildTree()
	cs := callstack.New(root)
	_, _ = cs.Step()

	codec := NewCodec(root)
	a, err := codec.Capture(cs)
	require.NoError(t, err)
	b, err := codec.Capture(cs)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
