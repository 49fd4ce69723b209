package assistant

import "context"

// Generator is the contract the conversational flows depend on: thread
// lifecycle, message append, streamed runs and one-shot completions.
// *Client satisfies it against the real API; tests substitute their own.
type Generator interface {
	CreateThread(ctx context.Context) (string, error)
	DeleteThread(ctx context.Context, threadId string) error
	AddMessage(ctx context.Context, threadId, content string) error
	StreamRun(ctx context.Context, threadId, assistantId string) (*RunResult, error)
	Complete(ctx context.Context, prompt string) (string, error)
}

var _ Generator = (*Client)(nil)
