//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestModel_Integration_ExtractsRequestedData(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	model := gemini.NewModel(client, "")

	answer, err := model.Generate(ctx, pagesift.BuildPrompt(
		"Contact us\nsales@example.com\nOpening hours 9-5",
		"email addresses",
	))

	require.NoError(t, err)
	assert.Contains(t, answer, "sales@example.com")
	assert.NotContains(t, answer, "Opening hours")
}
