package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestToJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"title": "Agreement", "items": []string{}}

	if err := To(&buf, FormatJSON, data); err != nil {
		t.Fatalf("To() error = %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "\n  \"items\": [],") && !strings.Contains(got, "\"items\": []") {
		t.Errorf("expected indented JSON with explicit empty array, got:\n%s", got)
	}
}

func TestToYAML(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"title": "Agreement"}

	if err := To(&buf, FormatYAML, data); err != nil {
		t.Fatalf("To() error = %v", err)
	}
	if !strings.Contains(buf.String(), "title: Agreement") {
		t.Errorf("unexpected YAML output: %s", buf.String())
	}
}

func TestToUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := To(&buf, Format("toml"), nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestSetFormat(t *testing.T) {
	SetFormat("yaml")
	if GetFormat() != FormatYAML {
		t.Errorf("GetFormat() = %v, want yaml", GetFormat())
	}
	SetFormat("json")
	if GetFormat() != FormatJSON {
		t.Errorf("GetFormat() = %v, want json", GetFormat())
	}
	SetFormat("bogus")
	if GetFormat() != FormatJSON {
		t.Errorf("GetFormat() with bogus input = %v, want json", GetFormat())
	}
}
