package loader

import (
	"fmt"
	"strings"
)

// ParseError reports an ill-formed JSON shape: an unknown token, an unknown
// first key, a wrong value type in an otherwise recognized shape, or an
// unparsable path. It carries the JSON-pointer-like traversal path of keys
// and indices that led to the offending construct.
//
// encoding/json's streaming decoder does not expose line/column the way a
// hand-rolled lexer does, so ParseError uses a pointer path instead.
type ParseError struct {
	Path    []string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	where := "$"
	if len(e.Path) > 0 {
		where = "$/" + strings.Join(e.Path, "/")
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func newParseError(path []string, format string, args ...interface{}) *ParseError {
	return &ParseError{Path: append([]string(nil), path...), Message: fmt.Sprintf(format, args...)}
}

func wrapParseError(path []string, cause error, format string, args ...interface{}) *ParseError {
	return &ParseError{Path: append([]string(nil), path...), Message: fmt.Sprintf(format, args...), Cause: cause}
}

// extend returns a new path with seg appended, never aliasing base's
// backing array: recursive decode calls fork the path per branch.
func extend(base []string, seg string) []string {
	out := make([]string, len(base)+1)
	copy(out, base)
	out[len(base)] = seg
	return out
}

// VersionError reports an inkVersion outside the engine's compatibility
// window.
type VersionError struct {
	Got           uint32
	MinCompatible uint32
	MaxCompatible uint32
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("inkVersion %d outside compatible range [%d, %d]", e.Got, e.MinCompatible, e.MaxCompatible)
}
