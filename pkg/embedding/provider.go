package embedding

import "context"

// Task types hint the provider how the text will be used. Gemini honors
// them; other providers ignore them.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// Provider generates a text embedding vector.
type Provider interface {
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)
}
