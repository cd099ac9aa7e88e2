package providers

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Registry holds references to LLM clients. It supports config-driven
// instantiation and provides thread-safe access.
type Registry struct {
	mu         sync.RWMutex
	llmClients map[string]LLMClient
	logger     *slog.Logger
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		llmClients: make(map[string]LLMClient),
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// RegisterLLM registers an LLM client by name.
func (r *Registry) RegisterLLM(name string, client LLMClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.llmClients[name] = client
	if r.logger != nil {
		r.logger.Debug("registered LLM client", "name", name)
	}
}

// GetLLM returns an LLM client by name.
func (r *Registry) GetLLM(name string) (LLMClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.llmClients[name]
	if !ok {
		return nil, fmt.Errorf("LLM client not found: %s", name)
	}
	return client, nil
}

// ListLLM returns all registered LLM client names, sorted.
func (r *Registry) ListLLM() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.llmClients))
	for name := range r.llmClients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasLLM checks if an LLM client is registered.
func (r *Registry) HasLLM(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.llmClients[name]
	return ok
}

// LLMProviderConfig describes one LLM provider entry, with API keys already
// resolved from the environment.
type LLMProviderConfig struct {
	Type    string
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Enabled bool
}

// RegistryConfig collects provider entries for BuildFromConfig.
type RegistryConfig struct {
	LLMProviders map[string]LLMProviderConfig
}

// BuildFromConfig instantiates clients for every enabled provider entry.
// Unknown provider types are skipped with a warning rather than failing the
// whole registry.
func BuildFromConfig(cfg RegistryConfig, logger *slog.Logger) *Registry {
	registry := NewRegistry()
	if logger != nil {
		registry.SetLogger(logger)
	} else {
		logger = slog.Default()
	}

	for name, pc := range cfg.LLMProviders {
		if !pc.Enabled {
			continue
		}
		switch pc.Type {
		case OpenRouterName:
			registry.RegisterLLM(name, NewOpenRouterClient(OpenRouterConfig{
				APIKey:       pc.APIKey,
				BaseURL:      pc.BaseURL,
				DefaultModel: pc.Model,
				Timeout:      pc.Timeout,
			}))
		case OpenAIName:
			registry.RegisterLLM(name, NewOpenAIClient(OpenAIConfig{
				APIKey:       pc.APIKey,
				BaseURL:      pc.BaseURL,
				DefaultModel: pc.Model,
				Timeout:      pc.Timeout,
			}))
		default:
			logger.Warn("unknown LLM provider type", "name", name, "type", pc.Type)
		}
	}

	return registry
}
