package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiGenerator struct{}

// NewGeminiGenerator creates a Generator backed by the Gemini API. A fresh
// client is built for every call so that key rotation never mutates a client
// another flow is using.
func NewGeminiGenerator() Generator {
	return &geminiGenerator{}
}

func (g *geminiGenerator) Generate(ctx context.Context, apiKey, prompt string, opts GenerateOptions) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		TopP:            genai.Ptr(opts.TopP),
		MaxOutputTokens: opts.MaxOutputTokens,
		CandidateCount:  opts.CandidateCount,
	}

	result, err := client.Models.GenerateContent(ctx, opts.Model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// isQuotaError reports whether err indicates a quota or rate-limit
// condition. Matches 429 status codes and RESOURCE_EXHAUSTED errors.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(msg), "quota")
}
