package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/pagesift"
	siftopenai "github.com/fwojciec/pagesift/openai"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pagesift.Model = (*siftopenai.Model)(nil)

// newServer serves /chat/completions with the given handler.
func newServer(t *testing.T, fn func(req openai.ChatCompletionRequest) (int, any)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		status, body := fn(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewModel_RequiresModelName(t *testing.T) {
	t.Parallel()

	_, err := siftopenai.NewModel(siftopenai.Config{})

	require.Error(t, err)
	assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
}

func TestModel_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns first choice content", func(t *testing.T) {
		t.Parallel()

		var got openai.ChatCompletionRequest
		srv := newServer(t, func(req openai.ChatCompletionRequest) (int, any) {
			got = req
			return http.StatusOK, openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "sales@example.com"}},
				},
			}
		})

		model, err := siftopenai.NewModel(siftopenai.Config{BaseURL: srv.URL + "/v1", Model: "llama3.2"})
		require.NoError(t, err)

		answer, err := model.Generate(context.Background(), pagesift.BuildPrompt("mail sales@example.com", "emails"))

		require.NoError(t, err)
		assert.Equal(t, "sales@example.com", answer)
		assert.Equal(t, "llama3.2", got.Model)
		require.Len(t, got.Messages, 1)
		assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[0].Role)
		assert.Contains(t, got.Messages[0].Content, "mail sales@example.com")
		assert.Contains(t, got.Messages[0].Content, "emails")
	})

	t.Run("returns empty answer unchanged", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, func(openai.ChatCompletionRequest) (int, any) {
			return http.StatusOK, openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: ""}}},
			}
		})

		model, err := siftopenai.NewModel(siftopenai.Config{BaseURL: srv.URL + "/v1", Model: "m"})
		require.NoError(t, err)

		answer, err := model.Generate(context.Background(), pagesift.BuildPrompt("x", "y"))

		require.NoError(t, err)
		assert.Empty(t, answer)
	})

	t.Run("fails when no choices returned", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, func(openai.ChatCompletionRequest) (int, any) {
			return http.StatusOK, openai.ChatCompletionResponse{}
		})

		model, err := siftopenai.NewModel(siftopenai.Config{BaseURL: srv.URL + "/v1", Model: "m"})
		require.NoError(t, err)

		_, err = model.Generate(context.Background(), pagesift.BuildPrompt("x", "y"))

		require.Error(t, err)
		assert.Equal(t, pagesift.EINTERNAL, pagesift.ErrorCode(err))
		assert.Contains(t, pagesift.ErrorMessage(err), "no choices")
	})

	t.Run("propagates API errors", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, func(openai.ChatCompletionRequest) (int, any) {
			return http.StatusInternalServerError, map[string]any{
				"error": map[string]any{"message": "model not loaded", "type": "server_error"},
			}
		})

		model, err := siftopenai.NewModel(siftopenai.Config{BaseURL: srv.URL + "/v1", Model: "m"})
		require.NoError(t, err)

		_, err = model.Generate(context.Background(), pagesift.BuildPrompt("x", "y"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "model not loaded")
	})
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	req := siftopenai.BuildRequest("llama3.2", pagesift.BuildPrompt("segment", "prices"))

	assert.Equal(t, "llama3.2", req.Model)
	assert.Equal(t, 1, req.N)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, pagesift.BuildPrompt("segment", "prices").Render(), req.Messages[0].Content)
}
