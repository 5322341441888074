// Package callstack implements the depth-first execution cursor over a
// loaded ink.Container tree: Element, RuntimeContext, Thread, and
// CallStack.
package callstack

import "github.com/aledsdavies/inkrt/ink"

// Element is a cursor into one Container: the child at index, or "one past
// the end" when index == container.Len().
type Element struct {
	container *ink.Container
	index     int
}

// newElement builds a cursor at (container, index).
func newElement(container *ink.Container, index int) Element {
	return Element{container: container, index: index}
}

// current returns the child at index, or (nil, false) if index is at or
// past the end of container.
func (e Element) current() (ink.RuntimeObject, bool) {
	return e.container.ChildAt(e.index)
}

// advance moves to index+1 and returns the new current, or (nil, false) at
// the end of container.
func (e *Element) advance() (ink.RuntimeObject, bool) {
	e.index++
	return e.current()
}

// moveTo sets index to i when i is within container's bounds, reporting
// success.
func (e *Element) moveTo(i int) bool {
	if i < 0 || i >= e.container.Len() {
		return false
	}
	e.index = i
	return true
}
