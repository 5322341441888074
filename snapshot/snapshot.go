// Package snapshot captures and restores a callstack.CallStack's cursor
// state as a compact, in-memory CBOR-encoded value, not a file format.
//
// This package does not persist anything to disk. A host that wants
// undo/redo, save slots held entirely in memory, or A/B branching over the
// same loaded story can use Capture/Restore without this package ever
// touching a file or a network socket.
//
// A CallStack's cursors reference shared ink.Container nodes by pointer,
// which CBOR cannot round-trip directly (and must not: re-encoding the
// whole story graph on every snapshot would be wasteful, and two snapshots
// of the same story should still share one copy of it in memory). Instead
// each element records its container's absolute path from the graph root
// (graph.PathTo) and its cursor index; Restore re-resolves those paths
// against the same root to recover live pointers sharing the original
// graph.
package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/aledsdavies/inkrt/callstack"
	"github.com/aledsdavies/inkrt/graph"
	"github.com/aledsdavies/inkrt/ink"
	"github.com/aledsdavies/inkrt/ipath"
)

// elementSnap is one level of a captured frame's element stack.
type elementSnap struct {
	ContainerPath string `cbor:"p"`
	Index         int    `cbor:"i"`
}

// contextSnap is one captured call frame.
type contextSnap struct {
	Elements               []elementSnap `cbor:"e"`
	InExpressionEvaluation bool          `cbor:"x"`
	StackPushType          int           `cbor:"t"`
}

// threadSnap is one captured narrative thread.
type threadSnap struct {
	Contexts []contextSnap `cbor:"c"`
}

// document is the full captured call stack, as written to and read from
// CBOR.
type document struct {
	Threads []threadSnap `cbor:"threads"`
}

// Codec captures and restores CallStack snapshots against a fixed story
// graph. All snapshots produced by one Codec, and every Restore call made
// with it, must share that same root: a snapshot captured against one
// story is meaningless replayed against another.
type Codec struct {
	root *ink.Container
}

// NewCodec builds a Codec bound to root.
func NewCodec(root *ink.Container) *Codec {
	return &Codec{root: root}
}

// Capture encodes cs as a self-contained CBOR byte slice.
func (c *Codec) Capture(cs *callstack.CallStack) ([]byte, error) {
	doc := document{}
	for _, th := range cs.Threads() {
		ts := threadSnap{}
		for _, ctx := range th.Contexts() {
			cSnap := contextSnap{
				InExpressionEvaluation: ctx.InExpressionEvaluation,
				StackPushType:          int(ctx.StackPushType),
			}
			for _, lvl := range ctx.Levels() {
				p, ok := graph.PathTo(c.root, lvl.Container)
				if !ok {
					return nil, fmt.Errorf("snapshot: container at depth not reachable from the bound root")
				}
				cSnap.Elements = append(cSnap.Elements, elementSnap{
					ContainerPath: p.Key(),
					Index:         lvl.Index,
				})
			}
			ts.Contexts = append(ts.Contexts, cSnap)
		}
		doc.Threads = append(doc.Threads, ts)
	}

	data, err := cbor.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// Restore decodes data back into a live CallStack sharing c's bound graph.
func (c *Codec) Restore(data []byte) (*callstack.CallStack, error) {
	var doc document
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if len(doc.Threads) == 0 {
		return nil, fmt.Errorf("snapshot: document has no threads")
	}

	g := graph.New(c.root)

	threads := make([]*callstack.Thread, 0, len(doc.Threads))
	for _, ts := range doc.Threads {
		contexts := make([]*callstack.RuntimeContext, 0, len(ts.Contexts))
		for _, cSnap := range ts.Contexts {
			levels := make([]callstack.FrameLevel, 0, len(cSnap.Elements))
			for _, eSnap := range cSnap.Elements {
				// An empty path denotes the root itself: Path.String() of a
				// zero-fragment absolute path is "", which Parse rejects
				// as ill-formed input, so the root is special-cased here
				// rather than round-tripped through Parse.
				if eSnap.ContainerPath == "" {
					levels = append(levels, callstack.FrameLevel{Container: c.root, Index: eSnap.Index})
					continue
				}

				p, ok := ipath.Parse(eSnap.ContainerPath)
				if !ok {
					return nil, fmt.Errorf("snapshot: unparsable container path %q", eSnap.ContainerPath)
				}
				obj, ok := g.Resolve(p)
				if !ok {
					return nil, fmt.Errorf("snapshot: container path %q does not resolve against the bound root", eSnap.ContainerPath)
				}
				container, ok := obj.(*ink.Container)
				if !ok {
					return nil, fmt.Errorf("snapshot: path %q resolves to a non-container", eSnap.ContainerPath)
				}
				levels = append(levels, callstack.FrameLevel{Container: container, Index: eSnap.Index})
			}
			contexts = append(contexts, callstack.RestoreRuntimeContext(
				levels, ink.PushType(cSnap.StackPushType), cSnap.InExpressionEvaluation,
			))
		}
		threads = append(threads, callstack.RestoreThread(contexts))
	}

	return callstack.Restore(threads), nil
}
