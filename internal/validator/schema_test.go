package validator

import (
	"strings"
	"testing"
)

const pricingSchemaJSON = `{
  "type": "object",
  "required": ["pricing"],
  "properties": {
    "pricing": {
      "type": "object",
      "required": ["model"],
      "properties": {
        "model": {"enum": ["free", "paid"]}
      }
    }
  }
}`

// TestSchemaAppendsViolations verifies schema errors follow the built-in checks.
func TestSchemaAppendsViolations(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeRecord(t, dir, "schema.json", pricingSchemaJSON)
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	v := New(WithSchema(schema))

	body := withField("category", "category: devops")
	issues := v.Validate(parseRecord(t, body))
	if len(issues) != 2 {
		t.Fatalf("expected two issues, got %v", Messages(issues))
	}
	if !strings.HasPrefix(issues[0].Message, "Invalid category") {
		t.Fatalf("expected category issue first, got %q", issues[0].Message)
	}
	if !strings.HasPrefix(issues[1].Message, "Schema violation: ") || !strings.Contains(issues[1].Message, "pricing") {
		t.Fatalf("expected pricing schema violation, got %q", issues[1].Message)
	}

	valid := validRecordYAML() + "pricing:\n  model: free\n"
	if issues := v.Validate(parseRecord(t, valid)); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", Messages(issues))
	}
}

// TestSchemaFromYAML verifies YAML schema files are accepted.
func TestSchemaFromYAML(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeRecord(t, dir, "schema.yaml", `type: object
properties:
  tags:
    type: array
    minItems: 2
`)
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	if schema.Path() != schemaPath {
		t.Fatalf("expected path %q, got %q", schemaPath, schema.Path())
	}
	issues := New(WithSchema(schema)).Validate(parseRecord(t, validRecordYAML()))
	if len(issues) != 1 || !strings.Contains(issues[0].Message, "tags") {
		t.Fatalf("expected tags schema violation, got %v", Messages(issues))
	}
}

// TestLoadSchemaErrors verifies unreadable and invalid schemas are rejected.
func TestLoadSchemaErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSchema(dir + "/missing.json"); err == nil {
		t.Fatalf("expected read error")
	}
	badPath := writeRecord(t, dir, "bad.json", `{"type": 12}`)
	if _, err := LoadSchema(badPath); err == nil {
		t.Fatalf("expected compile error")
	}
}

// TestSchemaSkippedOnParseFailure verifies parse failures still short-circuit.
func TestSchemaSkippedOnParseFailure(t *testing.T) {
	dir := t.TempDir()
	schema, err := LoadSchema(writeRecord(t, dir, "schema.json", pricingSchemaJSON))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	path := writeRecord(t, dir, "broken.yaml", "id: [\n")
	issues := New(WithSchema(schema)).ValidateFile(path)
	if len(issues) != 1 {
		t.Fatalf("expected a single parse issue, got %v", Messages(issues))
	}
}
