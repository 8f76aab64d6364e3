package provider

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// qwenBaseURL is DashScope's OpenAI-compatible endpoint.
const qwenBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// qwenSystemPrompt pins the persona and forbids markdown fences. Models
// ignore the latter often enough that the gateway still strips fences.
const qwenSystemPrompt = "你是\"启航导师\"，一名专业的AI职业规划师。请严格按照用户要求的JSON格式返回结果，不要包含任何其他内容，不要使用markdown代码块包裹。"

// Qwen calls Tongyi Qianwen through DashScope's OpenAI-compatible
// chat-completions API and extracts choices[0].message.content.
type Qwen struct {
	client *openai.Client
	model  string
}

// NewQwen creates a Qwen provider. baseURL overrides the DashScope endpoint
// when non-empty (used in tests).
func NewQwen(apiKey, baseURL, model string) *Qwen {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = qwenBaseURL
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Qwen{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name returns "qwen".
func (q *Qwen) Name() string { return "qwen" }

// Generate sends the instruction as a single user turn behind the fixed
// system prompt and returns the completion text.
func (q *Qwen) Generate(ctx context.Context, instruction string) (string, error) {
	resp, err := q.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       q.model,
		Temperature: 0.8,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: qwenSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
	})
	if err != nil {
		return "", q.wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", NewError("qwen", ErrorCodeEmptyResponse, "no choices in response", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

func (q *Qwen) wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Error{
			Provider:      "qwen",
			Code:          codeForStatus(apiErr.HTTPStatusCode),
			Message:       apiErr.Message,
			StatusCode:    apiErr.HTTPStatusCode,
			OriginalError: err,
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &Error{
			Provider:      "qwen",
			Code:          codeForStatus(reqErr.HTTPStatusCode),
			Message:       err.Error(),
			StatusCode:    reqErr.HTTPStatusCode,
			OriginalError: err,
		}
	}
	return NewError("qwen", ErrorCodeTimeout, err.Error(), err)
}
