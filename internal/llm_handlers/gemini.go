package llmHandlers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GenaiGeminiClient implements Client for Gemini via the Google AI API.
type GenaiGeminiClient struct {
	client  *genai.Client
	modelID string

	Temperature float32
	MaxTokens   int32
}

func NewGenaiGeminiClient(ctx context.Context) (*GenaiGeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	modelID := os.Getenv("GEMINI_MODEL_ID")

	if apiKey == "" || modelID == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY and GEMINI_MODEL_ID must be set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})

	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &GenaiGeminiClient{
		client:      client,
		modelID:     modelID,
		Temperature: 0.2,
		MaxTokens:   1024,
	}, nil
}

// convertRequestToGenaiContent maps the provider-neutral request onto genai
// contents. File references become FileData parts.
func convertRequestToGenaiContent(req Request) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.Turns))

	for _, turn := range req.Turns {
		roleOut := "user"
		if turn.Role == TurnRoleModel {
			roleOut = "model"
		}

		parts := make([]*genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			if p.FileURI != "" {
				parts = append(parts, &genai.Part{
					FileData: &genai.FileData{
						FileURI:  p.FileURI,
						MIMEType: p.MIMEType,
					},
				})
				continue
			}
			parts = append(parts, &genai.Part{Text: p.Text})
		}

		contents = append(contents, &genai.Content{
			Role:  roleOut,
			Parts: parts,
		})
	}

	return contents
}

func (v *GenaiGeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	contents := convertRequestToGenaiContent(req)

	// Build generation config
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &v.Temperature,
		MaxOutputTokens: v.MaxTokens,
	}

	// Add system instruction if exists
	if req.SystemInstruction != "" {
		systemPart := &genai.Part{Text: req.SystemInstruction}
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{systemPart},
		}
	}

	resp, err := v.client.Models.GenerateContent(ctx, v.modelID, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini GenerateContent: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	// Collect output text from parts
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					sb.WriteString(part.Text)
				}
			}
		}
	}

	return sb.String(), nil
}
