// Package llm talks to an OpenAI-compatible chat endpoint (OpenRouter by
// default) to render creative prompts into images.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/use-agent/brandscout/config"
)

var (
	reURL      = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")
	reImageExt = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|svg)(\?.*)?$`)
)

// ImageClient asks a multimodal chat model for an image.
type ImageClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewImageClient builds a client from cfg. The API key is required.
func NewImageClient(cfg config.ImageGenConfig) (*ImageClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm: image generation API key is not set")
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &ImageClient{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// GenerateImage sends prompt as a single user text part and returns the
// first image URL in the answer, or "" when the model replied without one.
// Transport and API failures are returned as errors.
func (c *ImageClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
				},
			},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		slog.Warn("image model returned no choices", "model", c.model)
		return "", nil
	}
	return ImageURLFromMessage(resp.Choices[0].Message), nil
}

// ImageURLFromMessage prefers an image_url content part. For plain text
// answers it picks the first URL that looks like an image: a known image
// extension, or "image", "photo" or "pic" anywhere in the URL.
func ImageURLFromMessage(msg openai.ChatCompletionMessage) string {
	for _, part := range msg.MultiContent {
		if part.Type == openai.ChatMessagePartTypeImageURL && part.ImageURL != nil && part.ImageURL.URL != "" {
			return part.ImageURL.URL
		}
	}

	text := msg.Content
	if text == "" {
		var parts []string
		for _, part := range msg.MultiContent {
			if part.Type == openai.ChatMessagePartTypeText {
				parts = append(parts, part.Text)
			}
		}
		text = strings.Join(parts, "\n")
	}
	return ImageURLFromText(text)
}

// ImageURLFromText returns the first image-like URL in text, or "".
func ImageURLFromText(text string) string {
	for _, u := range reURL.FindAllString(text, -1) {
		if reImageExt.MatchString(u) ||
			strings.Contains(u, "image") ||
			strings.Contains(u, "photo") ||
			strings.Contains(u, "pic") {
			return u
		}
	}
	return ""
}
