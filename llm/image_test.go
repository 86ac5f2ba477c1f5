package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/brandscout/config"
)

func TestImageURLFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"extension", "Here you go: https://cdn.example/a/b.PNG?size=2 enjoy", "https://cdn.example/a/b.PNG?size=2"},
		{"keyword", "see https://example.com/docs then https://img.example/photos/123", "https://img.example/photos/123"},
		{"first image wins", "https://x.example/one.jpg https://x.example/two.webp", "https://x.example/one.jpg"},
		{"stops at quotes", `<img src="https://x.example/pic.gif">`, "https://x.example/pic.gif"},
		{"no image url", "read https://example.com/about for details", ""},
		{"no url", "I cannot generate images.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageURLFromText(tt.text))
		})
	}
}

func TestImageURLFromMessagePrefersImagePart(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: "https://text.example/fallback.png"},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: "https://img.example/gen.png"}},
		},
	}
	assert.Equal(t, "https://img.example/gen.png", ImageURLFromMessage(msg))

	msg.MultiContent = msg.MultiContent[:1]
	assert.Equal(t, "https://text.example/fallback.png", ImageURLFromMessage(msg))
}

func newChatServer(t *testing.T, status int, message any) (*httptest.Server, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&got)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"model":   "test-model",
			"choices": []any{map[string]any{"index": 0, "message": message, "finish_reason": "stop"}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func testClient(t *testing.T, baseURL string) *ImageClient {
	t.Helper()
	c, err := NewImageClient(config.ImageGenConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL + "/",
		Model:       "test-model",
		Temperature: 0.7,
		MaxTokens:   4000,
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestGenerateImageFromContentParts(t *testing.T) {
	srv, got := newChatServer(t, http.StatusOK, map[string]any{
		"role": "assistant",
		"content": []any{
			map[string]any{"type": "text", "text": "Here is your creative"},
			map[string]any{"type": "image_url", "image_url": map[string]any{"url": "https://img.example/creative.png"}},
		},
	})

	url, err := testClient(t, srv.URL).GenerateImage(t.Context(), "draw a bakery ad")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/creative.png", url)

	req := *got
	assert.Equal(t, "test-model", req["model"])
	assert.EqualValues(t, 4000, req["max_tokens"])
	msgs := req["messages"].([]any)
	require.Len(t, msgs, 1)
	content := msgs[0].(map[string]any)["content"].([]any)
	assert.Equal(t, "draw a bakery ad", content[0].(map[string]any)["text"])
}

func TestGenerateImageFromText(t *testing.T) {
	srv, _ := newChatServer(t, http.StatusOK, map[string]any{
		"role":    "assistant",
		"content": "Generated: https://cdn.example/out.webp",
	})
	url, err := testClient(t, srv.URL).GenerateImage(t.Context(), "p")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/out.webp", url)
}

func TestGenerateImageNoURL(t *testing.T) {
	srv, _ := newChatServer(t, http.StatusOK, map[string]any{
		"role":    "assistant",
		"content": "Sorry, I can only describe the image.",
	})
	url, err := testClient(t, srv.URL).GenerateImage(t.Context(), "p")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestGenerateImageAPIError(t *testing.T) {
	srv, _ := newChatServer(t, http.StatusTooManyRequests, nil)
	_, err := testClient(t, srv.URL).GenerateImage(t.Context(), "p")
	require.Error(t, err)

	var apiErr *openai.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.HTTPStatusCode)
}

func TestNewImageClientRequiresKey(t *testing.T) {
	_, err := NewImageClient(config.ImageGenConfig{})
	assert.Error(t, err)
}
