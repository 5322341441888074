// Package debugmeta carries optional source-position metadata: start/end
// line numbers plus the originating file and source names.
//
// The loader grammar (package loader) has no wire representation for
// source positions, so DebugMetadata is kept as a value type a host layer
// can attach out of band (for example, alongside a compiler that also
// emits a separate source map), but nothing in this module constructs or
// reads one; it is deliberately not wired into the loader or the runtime
// object model.
package debugmeta

import "fmt"

// DebugMetadata is an optional source-position annotation.
type DebugMetadata struct {
	StartLineNumber uint32
	EndLineNumber   uint32
	FileName        string // "" means absent
	SourceName      string // "" means absent
}

// New returns a zero-valued DebugMetadata.
func New() DebugMetadata {
	return DebugMetadata{}
}

// FromMetadata builds a fully-populated DebugMetadata.
func FromMetadata(startLine, endLine uint32, fileName, sourceName string) DebugMetadata {
	return DebugMetadata{
		StartLineNumber: startLine,
		EndLineNumber:   endLine,
		FileName:        fileName,
		SourceName:      sourceName,
	}
}

// HasFileName reports whether FileName was set.
func (d DebugMetadata) HasFileName() bool { return d.FileName != "" }

// HasSourceName reports whether SourceName was set.
func (d DebugMetadata) HasSourceName() bool { return d.SourceName != "" }

func (d DebugMetadata) String() string {
	if d.FileName != "" {
		return fmt.Sprintf("line %d of %s", d.StartLineNumber, d.FileName)
	}
	return fmt.Sprintf("line %d", d.StartLineNumber)
}
