package callstack

// Thread is a LIFO stack of RuntimeContexts: one narrative thread (ink's
// `<-` construct), not an OS thread.
type Thread struct {
	contexts []*RuntimeContext
}

// NewThread builds a thread with a single initial context.
func NewThread(initial *RuntimeContext) *Thread {
	return &Thread{contexts: []*RuntimeContext{initial}}
}

// Push adds a new context to the top of the thread.
func (t *Thread) Push(ctx *RuntimeContext) {
	t.contexts = append(t.contexts, ctx)
}

// Pop removes and returns the top context, or (nil, false) if the thread is
// empty.
func (t *Thread) Pop() (*RuntimeContext, bool) {
	if len(t.contexts) == 0 {
		return nil, false
	}
	top := t.contexts[len(t.contexts)-1]
	t.contexts = t.contexts[:len(t.contexts)-1]
	return top, true
}

// PopIf pops the top context only when pred returns true for it. pred is
// evaluated at most once.
func (t *Thread) PopIf(pred func(*RuntimeContext) bool) (*RuntimeContext, bool) {
	if len(t.contexts) == 0 {
		return nil, false
	}
	top := t.contexts[len(t.contexts)-1]
	if !pred(top) {
		return nil, false
	}
	t.contexts = t.contexts[:len(t.contexts)-1]
	return top, true
}

// Top returns the top context without popping, or (nil, false) if empty.
func (t *Thread) Top() (*RuntimeContext, bool) {
	if len(t.contexts) == 0 {
		return nil, false
	}
	return t.contexts[len(t.contexts)-1], true
}

// Len returns the number of contexts currently on the thread.
func (t *Thread) Len() int {
	return len(t.contexts)
}

// Contexts returns a copy of the thread's context stack, bottom first, for
// use by package snapshot.
func (t *Thread) Contexts() []*RuntimeContext {
	return append([]*RuntimeContext(nil), t.contexts...)
}

// RestoreThread rebuilds a Thread from a previously captured context stack,
// for use by package snapshot.
func RestoreThread(contexts []*RuntimeContext) *Thread {
	return &Thread{contexts: contexts}
}

// clone deep-copies every context so the new thread's cursors evolve
// independently of t's.
func (t *Thread) clone() *Thread {
	cp := make([]*RuntimeContext, len(t.contexts))
	for i, ctx := range t.contexts {
		cp[i] = ctx.clone()
	}
	return &Thread{contexts: cp}
}
