package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchemaJSON constrains the top-level document shape before the
// strict recursive descent ever runs, so a document with the wrong
// top-level shape fails fast with a precise JSON Schema error instead of a
// confusing deep one. Compiled once and cached.
const documentSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["inkVersion", "root"],
	"properties": {
		"inkVersion": {"type": "integer", "minimum": 0},
		"root": {"type": "array"},
		"listDefs": {}
	}
}`

var (
	documentSchemaOnce sync.Once
	documentSchema     *jsonschema.Schema
	documentSchemaErr  error
)

func compiledDocumentSchema() (*jsonschema.Schema, error) {
	documentSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		const resourceURL = "mem://inkrt/document.schema.json"
		if err := compiler.AddResource(resourceURL, bytes.NewReader([]byte(documentSchemaJSON))); err != nil {
			documentSchemaErr = fmt.Errorf("register document schema: %w", err)
			return
		}
		schema, err := compiler.Compile(resourceURL)
		if err != nil {
			documentSchemaErr = fmt.Errorf("compile document schema: %w", err)
			return
		}
		documentSchema = schema
	})
	return documentSchema, documentSchemaErr
}

// ValidateShape checks data against the top-level document schema without
// running the full recursive-descent loader. LoadValidated calls this
// before Load; callers that already trust their input can skip straight to
// Load.
func ValidateShape(data []byte) error {
	schema, err := compiledDocumentSchema()
	if err != nil {
		return err
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return wrapParseError(nil, err, "malformed top-level ink document")
	}

	if err := schema.Validate(v); err != nil {
		return wrapParseError(nil, err, "document does not match the top-level ink schema")
	}
	return nil
}

// LoadValidated runs ValidateShape before Load, giving early, precise
// "ill-formed document" errors for the common case of a wrong top-level
// shape.
func LoadValidated(data []byte, minCompatible, current uint32) (*Document, error) {
	if err := ValidateShape(data); err != nil {
		return nil, err
	}
	return Load(data, minCompatible, current)
}
