package ink

import "fmt"

// Count-flag bits as packed into the JSON "#f" field.
const (
	CountFlagVisits           = 0x1
	CountFlagTurnIndex        = 0x2
	CountFlagCountAtStartOnly = 0x4
)

// Container is the aggregate node: an ordered list of children plus an
// optional name and three independent count-policy flags. It is both a node
// in the graph and a named scope for path resolution.
//
// Containers are immutable once loading finishes and are shared by pointer;
// the loader is the only code that ever calls AddChild/Prepend/SetName/
// SetCountFlags.
type Container struct {
	Content []RuntimeObject

	name string // "" means unnamed

	visitsShouldBeCounted    bool
	turnIndexShouldBeCounted bool
	countAtStartOnly         bool
}

// NewContainer returns an empty, unnamed container.
func NewContainer() *Container {
	return &Container{}
}

func (*Container) isRuntimeObject() {}

func (c *Container) String() string {
	name := c.name
	if name == "" {
		name = "<anon>"
	}
	return fmt.Sprintf("Container(%s, %d children)", name, len(c.Content))
}

// AddChild appends a child positionally.
func (c *Container) AddChild(o RuntimeObject) {
	c.Content = append(c.Content, o)
}

// Prepend inserts a batch of children before the existing content,
// preserving the input order.
func (c *Container) Prepend(objs []RuntimeObject) {
	if len(objs) == 0 {
		return
	}
	merged := make([]RuntimeObject, 0, len(objs)+len(c.Content))
	merged = append(merged, objs...)
	merged = append(merged, c.Content...)
	c.Content = merged
}

// SetName sets the container's named identity for path resolution.
func (c *Container) SetName(name string) {
	c.name = name
}

// Name returns the container's name, or "" if unnamed.
func (c *Container) Name() string {
	return c.name
}

// HasName reports whether the container carries a non-empty name.
func (c *Container) HasName() bool {
	return c.name != ""
}

// SetCountFlags decodes the packed "#f" byte into the three independent
// count-policy booleans.
func (c *Container) SetCountFlags(flags byte) {
	c.visitsShouldBeCounted = flags&CountFlagVisits != 0
	c.turnIndexShouldBeCounted = flags&CountFlagTurnIndex != 0
	c.countAtStartOnly = flags&CountFlagCountAtStartOnly != 0
}

// CountFlags re-encodes the three booleans into the packed byte form. Each
// contributing bit is OR'd in independently: the three policies are
// orthogonal, never mutually exclusive.
func (c *Container) CountFlags() byte {
	var f byte
	if c.visitsShouldBeCounted {
		f |= CountFlagVisits
	}
	if c.turnIndexShouldBeCounted {
		f |= CountFlagTurnIndex
	}
	if c.countAtStartOnly {
		f |= CountFlagCountAtStartOnly
	}
	return f
}

func (c *Container) VisitsShouldBeCounted() bool    { return c.visitsShouldBeCounted }
func (c *Container) TurnIndexShouldBeCounted() bool { return c.turnIndexShouldBeCounted }
func (c *Container) CountAtStartOnly() bool         { return c.countAtStartOnly }

// FindByName returns the first positional child that is a Container named
// name. Lookup returns the first match; well-formed inputs do not duplicate
// names among a single container's children.
func (c *Container) FindByName(name string) (*Container, bool) {
	for _, child := range c.Content {
		if sub, ok := child.(*Container); ok && sub.name == name {
			return sub, true
		}
	}
	return nil, false
}

// NamedContent returns every direct child that is a named Container, keyed
// by name: a convenience for tooling that enumerates a container's
// addressable children. It does not affect load or resolve semantics.
func (c *Container) NamedContent() map[string]*Container {
	out := make(map[string]*Container)
	for _, child := range c.Content {
		if sub, ok := child.(*Container); ok && sub.HasName() {
			if _, exists := out[sub.name]; !exists {
				out[sub.name] = sub
			}
		}
	}
	return out
}

// NamedOnlyContent returns, in positional order, every direct child that is
// a named Container, as opposed to an anonymous one or a non-container
// leaf.
func (c *Container) NamedOnlyContent() []*Container {
	var out []*Container
	for _, child := range c.Content {
		if sub, ok := child.(*Container); ok && sub.HasName() {
			out = append(out, sub)
		}
	}
	return out
}

// Len returns the number of positional children.
func (c *Container) Len() int {
	return len(c.Content)
}

// ChildAt returns the child at index i, or nil and false if out of range.
func (c *Container) ChildAt(i int) (RuntimeObject, bool) {
	if i < 0 || i >= len(c.Content) {
		return nil, false
	}
	return c.Content[i], true
}
