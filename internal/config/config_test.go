package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	or, ok := cfg.GetLLMProvider("openrouter")
	if !ok {
		t.Fatal("default config missing openrouter provider")
	}
	if !or.Enabled {
		t.Error("openrouter should be enabled by default")
	}
	if or.APIKey != "${OPENROUTER_API_KEY}" {
		t.Errorf("openrouter api_key = %q", or.APIKey)
	}
	if cfg.Defaults.LLMProvider != "openrouter" {
		t.Errorf("default provider = %q", cfg.Defaults.LLMProvider)
	}

	enabled := cfg.EnabledLLMProviders()
	if _, ok := enabled["openai"]; ok {
		t.Error("openai should be disabled by default")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("COVENANT_TEST_KEY", "sk-12345")

	tests := []struct {
		in   string
		want string
	}{
		{"${COVENANT_TEST_KEY}", "sk-12345"},
		{"prefix-${COVENANT_TEST_KEY}", "prefix-sk-12345"},
		{"${COVENANT_TEST_MISSING}", ""},
		{"literal", "literal"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ResolveEnvVars(tt.in); got != tt.want {
			t.Errorf("ResolveEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToProviderRegistryConfig(t *testing.T) {
	t.Setenv("COVENANT_TEST_KEY2", "sk-abc")

	cfg := &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"openrouter": {
				Type:           "openrouter",
				Model:          "test/model",
				APIKey:         "${COVENANT_TEST_KEY2}",
				TimeoutSeconds: 30,
				Enabled:        true,
			},
		},
	}

	rc := cfg.ToProviderRegistryConfig(slog.Default())
	pc, ok := rc.LLMProviders["openrouter"]
	if !ok {
		t.Fatal("openrouter missing from registry config")
	}
	if pc.APIKey != "sk-abc" {
		t.Errorf("APIKey = %q, want sk-abc", pc.APIKey)
	}
	if pc.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", pc.Timeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
llm_providers:
  openrouter:
    type: openrouter
    model: custom/model
    api_key: direct-key
    timeout_seconds: 60
    enabled: true
defaults:
  llm_provider: openrouter
  temperature: 0.2
  max_tokens: 1024
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	pc, ok := cfg.GetLLMProvider("openrouter")
	if !ok {
		t.Fatal("openrouter missing")
	}
	if pc.Model != "custom/model" {
		t.Errorf("model = %q", pc.Model)
	}
	if cfg.Defaults.MaxTokens != 1024 {
		t.Errorf("max_tokens = %d", cfg.Defaults.MaxTokens)
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault should refuse to overwrite an existing file")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written default error = %v", err)
	}
	if _, ok := cfg.GetLLMProvider("openrouter"); !ok {
		t.Error("written default missing openrouter")
	}
}
