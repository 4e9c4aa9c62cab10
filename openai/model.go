// Package openai implements pagesift.Model against any OpenAI-compatible
// chat completion endpoint. Ollama serves one at DefaultOllamaBaseURL.
package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fwojciec/pagesift"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultOllamaBaseURL is Ollama's OpenAI-compatible API root.
const DefaultOllamaBaseURL = "http://localhost:11434/v1"

// DefaultOllamaModel is the model used against Ollama when none is configured.
const DefaultOllamaModel = "llama3.2"

// Ensure Model implements pagesift.Model at compile time.
var _ pagesift.Model = (*Model)(nil)

// Config configures a Model.
type Config struct {
	// BaseURL is the API root. Empty means the OpenAI default.
	BaseURL string

	// APIKey is sent as a bearer token. Ollama ignores it.
	APIKey string

	// Model is the model name. Required.
	Model string

	// HTTPClient overrides the transport used for API calls.
	HTTPClient *http.Client
}

// Model sends extraction prompts as a single user message.
type Model struct {
	client *openai.Client
	model  string
}

// NewModel creates a new Model.
func NewModel(cfg Config) (*Model, error) {
	if cfg.Model == "" {
		return nil, pagesift.Errorf(pagesift.EINVALID, "model name required")
	}

	transportCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		transportCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		transportCfg.HTTPClient = cfg.HTTPClient
	}

	return &Model{
		client: openai.NewClientWithConfig(transportCfg),
		model:  cfg.Model,
	}, nil
}

// Generate renders the prompt and returns the first choice's content.
func (m *Model) Generate(ctx context.Context, prompt pagesift.Prompt) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, BuildRequest(m.model, prompt))
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", pagesift.Errorf(pagesift.EINTERNAL, "model %q returned no choices", m.model)
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildRequest returns the chat completion request for one prompt.
func BuildRequest(model string, prompt pagesift.Prompt) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt.Render()},
		},
		Temperature: 0,
		N:           1,
	}
}
