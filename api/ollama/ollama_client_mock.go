package ollama

import "context"

// OllamaClientMock answers every prompt with a fixed reply, or fails with Err.
type OllamaClientMock struct {
	Reply   string
	Err     error
	Prompts []string
}

// NewOllamaClientMock creates a mock replying with reply
func NewOllamaClientMock(reply string) *OllamaClientMock {
	return &OllamaClientMock{Reply: reply}
}

func (m *OllamaClientMock) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
