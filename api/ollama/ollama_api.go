package ollama

import "context"

// OllamaAPI defines the generative text interface used for small talk
type OllamaAPI interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	_ OllamaAPI = (*OllamaClient)(nil)
	_ OllamaAPI = (*OllamaClientMock)(nil)
)
