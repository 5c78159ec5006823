package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"educa_taxista/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
)

// OpenAIClient answers free-form chatbot questions through the
// chat-completions API (or any compatible endpoint via OPENAI_BASE_URL).

type OpenAIClient struct {
	client *resty.Client
	model  string
}

var _ interfaces.ILLMClient = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey, baseURL, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		log.Printf("[chat][llm] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &OpenAIClient{client: client, model: model}, nil
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	var out chatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": c.model,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": userMessage},
			},
			"max_tokens": 300,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		log.Printf("[chat][llm] request failed err=%v", err)
		return "", err
	}
	if resp.IsError() {
		log.Printf("[chat][llm] request rejected status=%d", resp.StatusCode())
		return "", fmt.Errorf("llm request failed: status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", errors.New("llm returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
