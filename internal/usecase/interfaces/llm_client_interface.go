package interfaces

import "context"

// ILLMClient abstracts the optional chat-completion provider used by the
// chatbot when no keyword intent matches. The chatbot degrades to a canned
// answer when the client is absent or fails.

type ILLMClient interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
