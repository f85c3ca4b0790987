// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// completionTimeout bounds every outbound completion call; the turn pipeline
// has no fallback path once a call hangs.
const completionTimeout = 15 * time.Second

// CompletionClient is the narrow contract the engine has on the
// natural-language completion service.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClient{model: model}
}

// Complete sends one prompt and returns the concatenated text parts.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
