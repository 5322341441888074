package main

import (
	"fmt"
	"os"

	"github.com/aledsdavies/inkrt/loader"
)

// loadDocument reads path and runs it through the schema-validated loader,
// logging the outcome before returning.
func loadDocument(path string) (*loader.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := loader.LoadValidated(data, minVersion, maxVersion)
	if err != nil {
		logger.Error("load failed", "file", path, "error", err)
		return nil, err
	}

	logger.Info("loaded document", "file", path, "inkVersion", doc.InkVersion)
	return doc, nil
}
