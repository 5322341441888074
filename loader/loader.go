// Package loader parses the ink JSON document grammar into the runtime
// object model (package ink): containers reconstructed from arrays whose
// last element may be a trailing metadata map, literals dispatched by
// string prefix or literal token, and the thirteen tagged object shapes.
package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aledsdavies/inkrt/ink"
)

// Document is the result of a successful Load: the declared format version,
// the root container of the story graph, and the opaque listDefs blob the
// core does not interpret.
type Document struct {
	InkVersion uint32
	Root       *ink.Container
	ListDefs   json.RawMessage
}

type topLevel struct {
	InkVersion *uint32         `json:"inkVersion"`
	Root       json.RawMessage `json:"root"`
	ListDefs   json.RawMessage `json:"listDefs"`
}

// Load parses data as a top-level ink document: {"inkVersion", "root",
// "listDefs"}, validating inkVersion against [minCompatible, current].
// Unlike the recursive-descent body, the top level is looked up by named
// field, not first-key dispatch; first-key discrimination only applies to
// the generic object grammar inside "root".
func Load(data []byte, minCompatible, current uint32) (*Document, error) {
	var top topLevel
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, wrapParseError(nil, err, "malformed top-level ink document")
	}

	if top.InkVersion == nil {
		return nil, newParseError(nil, `missing required field "inkVersion"`)
	}
	version := *top.InkVersion

	if version < minCompatible || version > current {
		return nil, &VersionError{Got: version, MinCompatible: minCompatible, MaxCompatible: current}
	}

	if len(top.Root) == 0 {
		return nil, newParseError([]string{"root"}, `missing required field "root"`)
	}

	obj, err := decodeValue([]string{"root"}, top.Root)
	if err != nil {
		return nil, err
	}
	root, ok := obj.(*ink.Container)
	if !ok {
		return nil, newParseError([]string{"root"}, "root must deserialize to a container (a JSON array)")
	}

	return &Document{
		InkVersion: version,
		Root:       root,
		ListDefs:   top.ListDefs,
	}, nil
}

// LoadReader is a convenience wrapper for io.Reader sources, accepting the
// document as a stream instead of an in-memory byte slice.
func LoadReader(r io.Reader, minCompatible, current uint32) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ink document: %w", err)
	}
	return Load(data, minCompatible, current)
}
