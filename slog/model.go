package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesift"
)

// Ensure LoggingModel implements pagesift.Model.
var _ pagesift.Model = (*LoggingModel)(nil)

// LoggingModel wraps a Model with logging. Prompt text is not logged,
// only its size.
type LoggingModel struct {
	next   pagesift.Model
	logger *slog.Logger
}

// NewLoggingModel creates a new LoggingModel.
func NewLoggingModel(next pagesift.Model, logger *slog.Logger) *LoggingModel {
	return &LoggingModel{next: next, logger: logger}
}

// Generate logs segment and answer sizes and delegates to the wrapped model.
func (m *LoggingModel) Generate(ctx context.Context, prompt pagesift.Prompt) (answer string, err error) {
	defer func(begin time.Time) {
		m.logger.Info("generate",
			"segment_chars", len(prompt.DOMContent),
			"answer_chars", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Generate(ctx, prompt)
}
