// Package gemini implements pagesift.Model using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/pagesift"
	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Model implements pagesift.Model at compile time.
var _ pagesift.Model = (*Model)(nil)

// Model sends extraction prompts to Gemini.
type Model struct {
	client *genai.Client
	model  string
}

// NewModel creates a new Model. An empty model name selects DefaultModel.
func NewModel(client *genai.Client, model string) *Model {
	if model == "" {
		model = DefaultModel
	}
	return &Model{client: client, model: model}
}

// Generate renders the prompt and returns Gemini's text answer.
func (m *Model) Generate(ctx context.Context, prompt pagesift.Prompt) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx, m.model,
		[]*genai.Content{genai.NewContentFromText(prompt.Render(), "user")},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagesift.Errorf(pagesift.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Extraction should be as literal as possible, so temperature is zero.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
