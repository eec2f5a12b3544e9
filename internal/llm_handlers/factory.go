package llmHandlers

import (
	"context"
	"fmt"
	"os"
)

type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderLangChain Provider = "langchain" // openai / groq / llama etc.
)

func NewLLMClient(ctx context.Context, kind string) (Client, error) {
	switch Provider(kind) {
	case ProviderGemini, "":
		return NewGenaiGeminiClient(ctx)
	case ProviderLangChain:
		return NewLangChainClient(LangChainConfig{
			Model:   os.Getenv("OPENAI_MODEL"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		})
	default:
		return nil, fmt.Errorf("unknown provider %s", kind)
	}
}
