package ink

import (
	"fmt"

	"github.com/aledsdavies/inkrt/ipath"
)

// PushType is the kind of call-stack frame a Divert pushes, if any.
type PushType int

const (
	PushNone PushType = iota
	PushFunction
	PushTunnel
)

func (p PushType) String() string {
	switch p {
	case PushFunction:
		return "function"
	case PushTunnel:
		return "tunnel"
	default:
		return "none"
	}
}

// TargetKind discriminates a Divert's target representation.
type TargetKind int

const (
	TargetPath TargetKind = iota
	TargetName
)

// Target is a Divert's destination: either a resolved Path or a Name to be
// resolved against a variable at runtime.
type Target struct {
	Kind TargetKind
	Path ipath.Path
	Name string
}

func PathTarget(p ipath.Path) Target { return Target{Kind: TargetPath, Path: p} }
func NameTarget(n string) Target     { return Target{Kind: TargetName, Name: n} }

func (t Target) String() string {
	if t.Kind == TargetName {
		return t.Name
	}
	return t.Path.String()
}

// Divert is a jump instruction: unconditional/conditional, optionally
// pushing a tunnel or function frame onto the call stack.
//
// Invariants (enforced by constructors in this package, not re-validated on
// every access):
//
//	plain divert:      PushType=None,     PushesToStack=false
//	function call:      PushType=Function, PushesToStack=true
//	tunnel:             PushType=Tunnel,   PushesToStack=true
//	external function:  PushType=Function, PushesToStack=false, IsExternal=true
type Divert struct {
	Target        *Target
	PushType      PushType
	PushesToStack bool
	ExternalArgs  *uint32
	IsExternal    bool
	IsConditional bool
}

func (*Divert) isRuntimeObject() {}

func (d *Divert) String() string {
	arrow := "->"
	switch d.PushType {
	case PushFunction:
		if d.IsExternal {
			arrow = "x()"
		} else {
			arrow = "f()"
		}
	case PushTunnel:
		arrow = "->t->"
	}
	target := "<none>"
	if d.Target != nil {
		target = d.Target.String()
	}
	cond := ""
	if d.IsConditional {
		cond = " (conditional)"
	}
	return fmt.Sprintf("%s %s%s", arrow, target, cond)
}

// NewDivert builds a plain, unconditional, non-stack-pushing divert to a
// resolved path.
func NewDivert(target ipath.Path) *Divert {
	t := PathTarget(target)
	return &Divert{Target: &t, PushType: PushNone}
}

// NewFunctionDivert builds a function-call divert.
func NewFunctionDivert(target Target) *Divert {
	return &Divert{Target: &target, PushType: PushFunction, PushesToStack: true}
}

// NewTunnelDivert builds a tunnel divert.
func NewTunnelDivert(target Target) *Divert {
	return &Divert{Target: &target, PushType: PushTunnel, PushesToStack: true}
}

// NewExternalDivert builds a divert to a host-implemented external function.
// The engine does not push a frame; the host executes it directly.
func NewExternalDivert(name string, externalArgs *uint32) *Divert {
	t := NameTarget(name)
	return &Divert{
		Target:       &t,
		PushType:     PushFunction,
		IsExternal:   true,
		ExternalArgs: externalArgs,
	}
}
