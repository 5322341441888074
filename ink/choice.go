package ink

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/inkrt/ipath"
)

// ChoicePoint flag bits as packed into the JSON "flg" field.
const (
	ChoiceFlagHasCondition         = 0x01
	ChoiceFlagHasStartContent      = 0x02
	ChoiceFlagHasChoiceOnlyContent = 0x04
	ChoiceFlagIsInvisibleDefault   = 0x08
	ChoiceFlagOnceOnly             = 0x10
)

// ChoicePoint marks a selectable branch in the narrative.
type ChoicePoint struct {
	PathOnChoice *ipath.Path

	HasCondition         bool
	HasStartContent      bool
	HasChoiceOnlyContent bool
	IsInvisibleDefault   bool
	OnceOnly             bool
}

func (*ChoicePoint) isRuntimeObject() {}

// NewChoicePointFromFlags decodes the packed "flg" byte into a ChoicePoint.
func NewChoicePointFromFlags(path *ipath.Path, flags uint8) *ChoicePoint {
	return &ChoicePoint{
		PathOnChoice:         path,
		HasCondition:         flags&ChoiceFlagHasCondition != 0,
		HasStartContent:      flags&ChoiceFlagHasStartContent != 0,
		HasChoiceOnlyContent: flags&ChoiceFlagHasChoiceOnlyContent != 0,
		IsInvisibleDefault:   flags&ChoiceFlagIsInvisibleDefault != 0,
		OnceOnly:             flags&ChoiceFlagOnceOnly != 0,
	}
}

// Flags re-encodes the five flag bits into the packed byte form.
func (c *ChoicePoint) Flags() uint8 {
	var f uint8
	if c.HasCondition {
		f |= ChoiceFlagHasCondition
	}
	if c.HasStartContent {
		f |= ChoiceFlagHasStartContent
	}
	if c.HasChoiceOnlyContent {
		f |= ChoiceFlagHasChoiceOnlyContent
	}
	if c.IsInvisibleDefault {
		f |= ChoiceFlagIsInvisibleDefault
	}
	if c.OnceOnly {
		f |= ChoiceFlagOnceOnly
	}
	return f
}

func (c *ChoicePoint) String() string {
	var tags []string
	if c.OnceOnly {
		tags = append(tags, "once")
	}
	if c.IsInvisibleDefault {
		tags = append(tags, "invisible")
	}
	if c.HasCondition {
		tags = append(tags, "cond")
	}
	path := "<none>"
	if c.PathOnChoice != nil {
		path = c.PathOnChoice.String()
	}
	if len(tags) == 0 {
		return fmt.Sprintf("* %s", path)
	}
	return fmt.Sprintf("* (%s) %s", strings.Join(tags, ","), path)
}
