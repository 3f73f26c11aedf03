// Package batchsource picks between jsonsource and yamlsource by file
// extension, so the CLI commands accept either interchange format
// without needing a --format flag.
package batchsource

import (
	"path/filepath"
	"strings"

	"github.com/accord-sh/accord/internal/adapter/outbound/jsonsource"
	"github.com/accord-sh/accord/internal/adapter/outbound/yamlsource"
	"github.com/accord-sh/accord/internal/domain/constraint"
	"github.com/accord-sh/accord/internal/domain/event"
)

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadConstraints reads a constraint batch, choosing yamlsource for
// .yaml/.yml paths and jsonsource otherwise.
func LoadConstraints(path string) ([]constraint.RawRecord, error) {
	if isYAML(path) {
		return yamlsource.LoadConstraints(path)
	}
	return jsonsource.LoadConstraints(path)
}

// LoadEvents reads an event batch, choosing yamlsource for .yaml/.yml
// paths and jsonsource otherwise.
func LoadEvents(path string) ([]event.RawRecord, error) {
	if isYAML(path) {
		return yamlsource.LoadEvents(path)
	}
	return jsonsource.LoadEvents(path)
}
