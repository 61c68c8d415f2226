package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"mcpregistry/internal/record"
)

// Schema is a compiled JSON Schema applied to the full record tree.
type Schema struct {
	path     string
	compiled *gojsonschema.Schema
}

// LoadSchema compiles a JSON Schema file. Files ending in .yaml or .yml are
// decoded as YAML first.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var loader gojsonschema.JSONLoader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse schema: %w", err)
		}
		loader = gojsonschema.NewGoLoader(doc)
	default:
		loader = gojsonschema.NewBytesLoader(data)
	}
	compiled, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", filepath.Base(path), err)
	}
	return &Schema{path: path, compiled: compiled}, nil
}

// Path returns the file the schema was loaded from.
func (s *Schema) Path() string {
	return s.path
}

// check validates the record tree and appends one issue per schema error,
// ordered by field for stable output.
func (s *Schema) check(rec *record.Record, add issueAdder) {
	tree, err := rec.Tree()
	if err != nil {
		add(fieldSchema, fmt.Sprintf("Schema validation failed: %v", err))
		return
	}
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(tree))
	if err != nil {
		add(fieldSchema, fmt.Sprintf("Schema validation failed: %v", err))
		return
	}
	if result.Valid() {
		return
	}
	errs := result.Errors()
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Field() != errs[j].Field() {
			return errs[i].Field() < errs[j].Field()
		}
		return errs[i].Description() < errs[j].Description()
	})
	for _, resultErr := range errs {
		add(resultErr.Field(), fmt.Sprintf("Schema violation: %s: %s", resultErr.Field(), resultErr.Description()))
	}
}
