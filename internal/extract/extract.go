// Package extract runs contract analysis through an LLM provider and
// validates the structured result against the contract schema.
package extract

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/covenantlabs/covenant/internal/contract"
	"github.com/covenantlabs/covenant/internal/providers"
)

// Options configure an Extractor. Temperature is a pointer so that an
// explicit 0 is distinguishable from unset; nil selects the default 0.1.
type Options struct {
	Model       string
	Temperature *float64
	MaxTokens   int
	Logger      *slog.Logger
}

// Extractor performs contract analysis through an injected LLM client.
type Extractor struct {
	client      providers.LLMClient
	model       string
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

// New creates an Extractor around the given client.
func New(client providers.LLMClient, opts Options) *Extractor {
	temperature := 0.1
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 4096
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		client:      client,
		model:       opts.Model,
		temperature: temperature,
		maxTokens:   opts.MaxTokens,
		logger:      logger,
	}
}

// Extract analyzes contract text and returns the validated result.
//
// Exactly one provider call is made per invocation; there is no retry. The
// error is one of ErrEmptyInput, *ValidationError, or *ExternalError.
func (e *Extractor) Extract(ctx context.Context, text string) (*contract.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		e.logger.Error("contract text is empty")
		return nil, ErrEmptyInput
	}

	e.logger.Info("running contract analysis",
		"provider", e.client.Name(),
		"model", e.model,
		"text_bytes", len(text),
	)

	req := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: contract.SystemPrompt()},
			{Role: "user", Content: contract.UserPrompt(text)},
		},
		Model:       e.model,
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
		ResponseFormat: &providers.ResponseFormat{
			Type:       "json_schema",
			JSONSchema: contract.SchemaJSON(),
		},
	}

	result, err := e.client.Chat(ctx, req)
	if err != nil {
		e.logger.Error("provider call failed",
			"provider", e.client.Name(),
			"error", err,
		)
		return nil, &ExternalError{Provider: e.client.Name(), Err: err}
	}

	if len(result.ParsedJSON) == 0 {
		err := errors.New("provider returned no structured output")
		e.logger.Error("malformed provider response", "provider", e.client.Name())
		return nil, &ExternalError{Provider: e.client.Name(), Err: err}
	}

	if err := providers.ValidateStructured(contract.SchemaJSON(), result.ParsedJSON); err != nil {
		var schemaErr *providers.SchemaError
		if errors.As(err, &schemaErr) {
			// The schema document itself failed to compile; this is
			// not the model's fault.
			e.logger.Error("contract schema failed to compile", "error", err)
			return nil, &ExternalError{Provider: e.client.Name(), Err: err}
		}
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			ve := newValidationError(validationErr)
			e.logger.Error("validation failed", "causes", len(ve.Causes), "error", ve)
			return nil, ve
		}
		e.logger.Error("validation failed", "error", err)
		return nil, &ValidationError{Causes: []FieldError{{Message: err.Error()}}}
	}

	analysis, err := contract.ParseAnalysis(result.ParsedJSON)
	if err != nil {
		e.logger.Error("failed to decode contract analysis", "error", err)
		return nil, &ValidationError{Causes: []FieldError{{Message: err.Error()}}}
	}

	e.logger.Info("extraction successful",
		"request_id", result.RequestID,
		"model", result.ModelUsed,
		"total_tokens", result.TotalTokens,
		"duration", result.ExecutionTime,
	)
	return analysis, nil
}
