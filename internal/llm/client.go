package llm

import (
	"context"
)

// Client is the model-facing contract used by the extraction and
// translation pipelines. Implementations return the reply text only;
// callers own prompt construction and output parsing.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteVision(ctx context.Context, prompt, mediaType, imageBase64 string) (string, error)
}
