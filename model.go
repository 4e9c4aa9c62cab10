package pagesift

import "context"

// Model is a text-in, text-out language model service.
type Model interface {
	// Generate sends the rendered prompt to the model and returns its answer.
	// An empty answer is valid and means nothing matched.
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
