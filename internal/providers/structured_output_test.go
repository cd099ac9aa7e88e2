package providers

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestParseStructuredJSON_PlainObject(t *testing.T) {
	got, err := parseStructuredJSON(`{"ok":true}`)
	if err != nil {
		t.Fatalf("parseStructuredJSON() error = %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("failed to unmarshal parsed JSON: %v", err)
	}
	if ok, _ := parsed["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got %#v", parsed)
	}
}

func TestParseStructuredJSON_StripsCodeFence(t *testing.T) {
	content := "```json\n{\"ok\":true}\n```"
	got, err := parseStructuredJSON(content)
	if err != nil {
		t.Fatalf("parseStructuredJSON() error = %v", err)
	}
	if !strings.Contains(string(got), `"ok":true`) {
		t.Fatalf("expected fenced JSON to parse, got %s", string(got))
	}
}

func TestParseStructuredJSON_RecoversSurroundingText(t *testing.T) {
	content := "Here is the result:\n{\"value\": 42}\nHope that helps!"
	got, err := parseStructuredJSON(content)
	if err != nil {
		t.Fatalf("parseStructuredJSON() error = %v", err)
	}
	if !strings.Contains(string(got), `"value":42`) {
		t.Fatalf("expected embedded JSON to parse, got %s", string(got))
	}
}

func TestParseStructuredJSON_Empty(t *testing.T) {
	if _, err := parseStructuredJSON("   "); err == nil {
		t.Fatal("expected error for empty content")
	}
	if _, err := parseStructuredJSON("not json at all"); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

const testWrappedSchema = `{
	"name":"test_record",
	"strict":true,
	"schema":{
		"type":"object",
		"properties":{
			"name":{"type":"string"},
			"signed":{"type":["string","null"],"format":"date"}
		},
		"required":["name"],
		"additionalProperties":false
	}
}`

func TestValidateStructured_Valid(t *testing.T) {
	doc := json.RawMessage(`{"name":"Quantum Dynamics Inc.","signed":"2024-07-15"}`)
	if err := ValidateStructured(json.RawMessage(testWrappedSchema), doc); err != nil {
		t.Fatalf("ValidateStructured(valid) error = %v", err)
	}
}

func TestValidateStructured_MissingRequired(t *testing.T) {
	doc := json.RawMessage(`{"signed":null}`)
	err := ValidateStructured(json.RawMessage(testWrappedSchema), doc)
	if err == nil {
		t.Fatal("expected validation error for missing required field")
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *jsonschema.ValidationError, got %T: %v", err, err)
	}
}

func TestValidateStructured_MalformedDate(t *testing.T) {
	doc := json.RawMessage(`{"name":"x","signed":"July 15, 2024"}`)
	if err := ValidateStructured(json.RawMessage(testWrappedSchema), doc); err == nil {
		t.Fatal("expected validation error for malformed date")
	}
}

func TestValidateStructured_UnknownField(t *testing.T) {
	doc := json.RawMessage(`{"name":"x","bogus":1}`)
	if err := ValidateStructured(json.RawMessage(testWrappedSchema), doc); err == nil {
		t.Fatal("expected validation error for unknown field")
	}
}

func TestValidateStructured_BrokenSchema(t *testing.T) {
	broken := json.RawMessage(`{"schema":{"type":"not-a-type"}}`)
	err := ValidateStructured(broken, json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected schema error")
	}
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
}

func TestValidateStructured_EmptyInputs(t *testing.T) {
	if err := ValidateStructured(nil, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("nil schema should validate, got %v", err)
	}
	if err := ValidateStructured(json.RawMessage(testWrappedSchema), nil); err != nil {
		t.Fatalf("nil document should validate, got %v", err)
	}
}
