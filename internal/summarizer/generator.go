package summarizer

import "context"

// GenerateOptions are the per-call sampling parameters for a generation
// request.
type GenerateOptions struct {
	Model           string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
	CandidateCount  int32
}

// Generator issues a single text-generation request using the given API key.
// An empty result with a nil error means the model returned no usable text.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string, opts GenerateOptions) (string, error)
}
