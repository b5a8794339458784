package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"heirloom/config"
	"heirloom/models"

	openai "github.com/sashabaranov/go-openai"
)

// Analyzer produces authentication results for a submitted piece of
// jewelry. Implementations call an external inference service.
type Analyzer interface {
	Analyze(ctx context.Context, analysis *models.AiAnalysis) (models.AnalysisResults, error)
}

// OpenAIAnalyzer asks a vision-capable chat model to appraise the first
// submitted photo and reply with structured JSON.
type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
}

func NewOpenAIAnalyzer() (*OpenAIAnalyzer, error) {
	if config.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return &OpenAIAnalyzer{
		client: openai.NewClient(config.OpenAIAPIKey),
		model:  config.OpenAIModel,
	}, nil
}

const analysisSystemPrompt = "You are a jewelry appraiser for a luxury resale house. " +
	"Reply with a single JSON object and nothing else, using the keys: " +
	`"materials" (array of strings), "authenticity" (string), "condition" (string), ` +
	`"estimated_value" (object with numeric "min" and "max" in USD) and "confidence" (number 0-1).`

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, analysis *models.AiAnalysis) (models.AnalysisResults, error) {
	var results models.AnalysisResults

	if len(analysis.ImageURLs) == 0 {
		return results, errors.New("no images provided for analysis")
	}

	var sb strings.Builder
	sb.WriteString("Appraise the jewelry in the photo.")
	if analysis.JewelryType != "" {
		fmt.Fprintf(&sb, " The seller describes it as a %s.", analysis.JewelryType)
	}
	if analysis.EstimatedEra != "" {
		fmt.Fprintf(&sb, " The seller estimates the era as %s.", analysis.EstimatedEra)
	}
	if analysis.AdditionalInfo != "" {
		fmt.Fprintf(&sb, " Additional notes: %s", analysis.AdditionalInfo)
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: sb.String()},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: analysis.ImageURLs[0],
						},
					},
				},
			},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return results, fmt.Errorf("inference call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return results, errors.New("inference service returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &results); err != nil {
		return models.AnalysisResults{}, fmt.Errorf("unparseable inference response: %w", err)
	}
	if results.Materials == nil {
		results.Materials = []string{}
	}
	return results, nil
}
