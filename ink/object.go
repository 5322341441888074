// Package ink is the runtime object model: a tagged sum of node kinds
// (literals, control flow, variable operations, containers) that together
// form the in-memory graph of a compiled ink-style narrative.
package ink

import (
	"fmt"

	"github.com/aledsdavies/inkrt/ipath"
)

// RuntimeObject is any node that can appear as a child of a Container.
// Identity of a node is its (concrete type, payload); no variant is ever
// silently substituted for another.
type RuntimeObject interface {
	fmt.Stringer
	isRuntimeObject()
}

// ValueKind discriminates the payload carried by a Value node.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueString
	ValueDivertTarget
	ValueVariablePointer
)

// Value is a literal on the evaluation stack or in output text.
//
// Exactly one field group is meaningful, selected by Kind:
//
//	ValueInt              -> Int
//	ValueFloat             -> Float
//	ValueString            -> Str
//	ValueDivertTarget       -> Target
//	ValueVariablePointer    -> VarName, ContextIndex
type Value struct {
	Kind ValueKind

	Int   int32
	Float float32
	Str   string

	Target ipath.Path

	VarName      string
	ContextIndex int32 // -1 means unresolved: look up the call stack
}

func NewIntValue(i int32) *Value      { return &Value{Kind: ValueInt, Int: i} }
func NewFloatValue(f float32) *Value  { return &Value{Kind: ValueFloat, Float: f} }
func NewStringValue(s string) *Value  { return &Value{Kind: ValueString, Str: s} }
func NewDivertTargetValue(p ipath.Path) *Value {
	return &Value{Kind: ValueDivertTarget, Target: p}
}

// NewVariablePointerValue builds a variable-pointer value. ci defaults to -1
// (unresolved) when the source JSON omits "ci".
func NewVariablePointerValue(name string, ci int32) *Value {
	return &Value{Kind: ValueVariablePointer, VarName: name, ContextIndex: ci}
}

func (v *Value) isRuntimeObject() {}

func (v *Value) String() string {
	switch v.Kind {
	case ValueInt:
		return fmt.Sprintf("%d", v.Int)
	case ValueFloat:
		return fmt.Sprintf("%g", v.Float)
	case ValueString:
		return fmt.Sprintf("^%s", v.Str)
	case ValueDivertTarget:
		return fmt.Sprintf("DivertTarget(-> %s)", v.Target.String())
	case ValueVariablePointer:
		return fmt.Sprintf("VarPtr(%s, ci=%d)", v.VarName, v.ContextIndex)
	default:
		return "Value(?)"
	}
}

// Equal reports structural equality between two values.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueInt:
		return v.Int == o.Int
	case ValueFloat:
		return v.Float == o.Float
	case ValueString:
		return v.Str == o.Str
	case ValueDivertTarget:
		return v.Target.Equal(o.Target)
	case ValueVariablePointer:
		return v.VarName == o.VarName && v.ContextIndex == o.ContextIndex
	default:
		return false
	}
}

// GlueKind discriminates the direction a Glue marker collapses whitespace.
type GlueKind int

const (
	GlueBidirectional GlueKind = iota
	GlueLeft
	GlueRight
)

// Glue is an inline whitespace-collapse marker. Its semantics are
// interpreted entirely by the Story façade; the core only carries it.
type Glue struct {
	Kind GlueKind
}

func (Glue) isRuntimeObject() {}

func (g Glue) String() string {
	switch g.Kind {
	case GlueBidirectional:
		return "<>"
	case GlueLeft:
		return "G<"
	case GlueRight:
		return "G>"
	default:
		return "Glue(?)"
	}
}

// Tag attaches metadata text to output; interpretation lives in the Story
// façade.
type Tag struct {
	Text string
}

func (Tag) isRuntimeObject() {}

func (t Tag) String() string { return fmt.Sprintf("# %s", t.Text) }

// VariableReference reads a named variable.
type VariableReference struct {
	Name string
}

func (VariableReference) isRuntimeObject() {}

func (v VariableReference) String() string { return fmt.Sprintf("VAR?(%s)", v.Name) }

// ReadCount queries the visit count of a named target.
type ReadCount struct {
	TargetPath ipath.Path
}

func (ReadCount) isRuntimeObject() {}

func (r ReadCount) String() string { return fmt.Sprintf("CNT?(%s)", r.TargetPath.String()) }

// VariableAssignment writes a variable, global or temporary.
// Re-assignment clears IsNewDeclaration.
type VariableAssignment struct {
	Name             string
	IsNewDeclaration bool
	IsGlobal         bool
}

func (VariableAssignment) isRuntimeObject() {}

func (a VariableAssignment) String() string {
	scope := "temp"
	if a.IsGlobal {
		scope = "VAR"
	}
	decl := ""
	if a.IsNewDeclaration {
		decl = " (new)"
	}
	return fmt.Sprintf("%s=%s%s", scope, a.Name, decl)
}

// Void is a placeholder value, e.g. the return of a no-return function call.
type Void struct{}

func (Void) isRuntimeObject() {}
func (Void) String() string   { return "void" }

// Null is an explicit absence marker, distinct from Void.
type Null struct{}

func (Null) isRuntimeObject() {}
func (Null) String() string   { return "null" }
