package mock

import (
	"context"

	"github.com/fwojciec/pagesift"
)

var _ pagesift.Model = (*Model)(nil)

// Model is a mock implementation of pagesift.Model.
type Model struct {
	GenerateFn func(ctx context.Context, prompt pagesift.Prompt) (string, error)
}

func (m *Model) Generate(ctx context.Context, prompt pagesift.Prompt) (string, error) {
	return m.GenerateFn(ctx, prompt)
}
