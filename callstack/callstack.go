package callstack

import "github.com/aledsdavies/inkrt/ink"

// CallStack is a LIFO stack of Threads. The initial call stack has exactly
// one thread with exactly one frame whose only element points into
// rootContainer, with StackPushType = ink.PushTunnel.
type CallStack struct {
	threads []*Thread
}

// New builds the initial call stack rooted at root.
func New(root *ink.Container) *CallStack {
	initial := NewRuntimeContext(root, ink.PushTunnel)
	return &CallStack{threads: []*Thread{NewThread(initial)}}
}

// CurrentThread returns the top thread.
func (cs *CallStack) CurrentThread() *Thread {
	return cs.threads[len(cs.threads)-1]
}

// CurrentContext returns the top context of the top thread, or (nil, false)
// if the current thread has no contexts (ill-formed outside of a reset in
// progress).
func (cs *CallStack) CurrentContext() (*RuntimeContext, bool) {
	return cs.CurrentThread().Top()
}

// CurrentObject returns the current child of the top context of the top
// thread, without advancing.
func (cs *CallStack) CurrentObject() (ink.RuntimeObject, bool) {
	ctx, ok := cs.CurrentContext()
	if !ok {
		return nil, false
	}
	return ctx.Get()
}

// Depth returns the number of contexts on the current thread.
func (cs *CallStack) Depth() int {
	return cs.CurrentThread().Len()
}

// ThreadAt returns the thread at index i (0 = bottom of the call stack), or
// (nil, false) if out of range.
func (cs *CallStack) ThreadAt(i int) (*Thread, bool) {
	if i < 0 || i >= len(cs.threads) {
		return nil, false
	}
	return cs.threads[i], true
}

// ThreadCount returns the number of threads currently on the call stack.
func (cs *CallStack) ThreadCount() int {
	return len(cs.threads)
}

// PushThread clones the current (top) thread by deep-copying its context
// stack, and pushes the clone as the new top thread. Both threads share the
// same underlying Containers by reference; their cursors evolve
// independently from this point on.
func (cs *CallStack) PushThread() {
	cs.threads = append(cs.threads, cs.CurrentThread().clone())
}

// PopThread discards the top thread. It is ill-formed to pop the last
// thread; callers must not call PopThread when ThreadCount() == 1.
func (cs *CallStack) PopThread() {
	if len(cs.threads) <= 1 {
		panic("callstack: cannot pop the last thread")
	}
	cs.threads = cs.threads[:len(cs.threads)-1]
}

// Reset discards every thread but one, replacing it with thread.
func (cs *CallStack) Reset(thread *Thread) {
	cs.threads = []*Thread{thread}
}

// Threads returns a copy of the call stack's thread list, bottom first, for
// use by package snapshot.
func (cs *CallStack) Threads() []*Thread {
	return append([]*Thread(nil), cs.threads...)
}

// Restore rebuilds a CallStack from a previously captured thread list, for
// use by package snapshot.
func Restore(threads []*Thread) *CallStack {
	return &CallStack{threads: threads}
}

// Step advances the current thread's top context.
func (cs *CallStack) Step() (ink.RuntimeObject, bool) {
	ctx, ok := cs.CurrentContext()
	if !ok {
		return nil, false
	}
	return ctx.Step()
}
