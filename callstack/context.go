package callstack

import "github.com/aledsdavies/inkrt/ink"

// RuntimeContext is a single call frame: a depth-first cursor over a
// Container subtree, expressed as a stack of Elements, one per level of
// nesting currently being descended into.
//
// Invariants: the element stack is never empty; the bottom element's
// container is the frame's "home".
type RuntimeContext struct {
	elements []Element

	// InExpressionEvaluation is toggled by EvalStart/EvalEnd control
	// commands. The core only stores and clones it; interpretation belongs
	// to the external interpreter.
	InExpressionEvaluation bool

	// StackPushType records the kind of push that created this frame.
	StackPushType ink.PushType
}

// NewRuntimeContext roots a fresh frame at (home, pushType): a single
// element positioned just before home's first child, ready for step().
func NewRuntimeContext(home *ink.Container, pushType ink.PushType) *RuntimeContext {
	return &RuntimeContext{
		elements:      []Element{newElement(home, -1)},
		StackPushType: pushType,
	}
}

// Depth returns the number of nested elements currently on the frame.
func (rc *RuntimeContext) Depth() int {
	return len(rc.elements)
}

// Get returns the current child without advancing, or (nil, false) if the
// top element has not yet been advanced onto a child (fresh or reset frame)
// or sits past the end of its container.
func (rc *RuntimeContext) Get() (ink.RuntimeObject, bool) {
	top := &rc.elements[len(rc.elements)-1]
	return top.current()
}

// Reset clears the element stack and re-roots the frame at (container,
// index).
func (rc *RuntimeContext) Reset(container *ink.Container, index int) {
	rc.elements = []Element{newElement(container, index)}
}

// MoveCurrentTo repositions the top element's cursor to i.
func (rc *RuntimeContext) MoveCurrentTo(i int) bool {
	top := &rc.elements[len(rc.elements)-1]
	return top.moveTo(i)
}

// Step is the depth-first pre-order traversal algorithm: advance the
// innermost element, descend into containers, unwind exhausted frames, and
// return the next non-container leaf, or (nil, false) when the whole frame
// is exhausted.
func (rc *RuntimeContext) Step() (ink.RuntimeObject, bool) {
	for {
		top := &rc.elements[len(rc.elements)-1]
		cur, ok := top.advance()

		if !ok {
			if len(rc.elements) == 1 {
				return nil, false
			}
			rc.elements = rc.elements[:len(rc.elements)-1]
			continue
		}

		if c, isContainer := cur.(*ink.Container); isContainer {
			rc.elements = append(rc.elements, newElement(c, -1))
			continue
		}

		return cur, true
	}
}

// FrameLevel is one level of a RuntimeContext's element stack: the container
// being traversed at that depth and the cursor's position within it.
type FrameLevel struct {
	Container *ink.Container
	Index     int
}

// Levels exposes the frame's element stack as a snapshot-friendly slice, one
// FrameLevel per nesting depth, bottom first. Used by package snapshot to
// capture a cursor's position without reaching into unexported fields.
func (rc *RuntimeContext) Levels() []FrameLevel {
	out := make([]FrameLevel, len(rc.elements))
	for i, e := range rc.elements {
		out[i] = FrameLevel{Container: e.container, Index: e.index}
	}
	return out
}

// RestoreRuntimeContext rebuilds a RuntimeContext from levels captured by
// Levels, for use by package snapshot.
func RestoreRuntimeContext(levels []FrameLevel, pushType ink.PushType, inExpressionEvaluation bool) *RuntimeContext {
	elems := make([]Element, len(levels))
	for i, l := range levels {
		elems[i] = newElement(l.Container, l.Index)
	}
	return &RuntimeContext{
		elements:               elems,
		InExpressionEvaluation: inExpressionEvaluation,
		StackPushType:          pushType,
	}
}

// clone deep-copies the element stack (and scalar frame state), so the
// clone's cursor evolves independently of the original's.
func (rc *RuntimeContext) clone() *RuntimeContext {
	elems := make([]Element, len(rc.elements))
	copy(elems, rc.elements)
	return &RuntimeContext{
		elements:               elems,
		InExpressionEvaluation: rc.InExpressionEvaluation,
		StackPushType:          rc.StackPushType,
	}
}
