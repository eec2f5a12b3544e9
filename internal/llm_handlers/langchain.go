package llmHandlers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangChainClient implements Client for OpenAI-compatible APIs (OpenAI, Groq,
// local llama servers). These APIs have no equivalent of the Gemini file
// store, so file-reference parts degrade to a short text pointer.
type LangChainClient struct {
	llm llms.Model
}

type LangChainConfig struct {
	Model   string // e.g. "gpt-4.1", "llama-3.1-70b-versatile"
	BaseURL string // optional: for Groq or other OpenAI-compatible APIs
	APIKey  string // if not set, it’ll fall back to env
}

func NewLangChainClient(cfg LangChainConfig) (*LangChainClient, error) {
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithToken(cfg.APIKey))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create langchain openai client: %w", err)
	}

	return &LangChainClient{llm: llm}, nil
}

func (c *LangChainClient) Generate(ctx context.Context, req Request) (string, error) {
	msgContents := make([]llms.MessageContent, 0, len(req.Turns)+1)
	if req.SystemInstruction != "" {
		msgContents = append(msgContents, llms.TextParts(llms.ChatMessageTypeSystem, req.SystemInstruction))
	}

	for _, turn := range req.Turns {
		msgType := llms.ChatMessageTypeHuman
		if turn.Role == TurnRoleModel {
			msgType = llms.ChatMessageTypeAI
		}

		parts := make([]llms.ContentPart, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			if p.FileURI != "" {
				parts = append(parts, llms.TextPart(fmt.Sprintf("[attached document: %s]", p.FileURI)))
				continue
			}
			parts = append(parts, llms.TextPart(p.Text))
		}

		msgContents = append(msgContents, llms.MessageContent{
			Role:  msgType,
			Parts: parts,
		})
	}

	resp, err := c.llm.GenerateContent(ctx, msgContents)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from LLM")
	}

	return resp.Choices[0].Content, nil
}
