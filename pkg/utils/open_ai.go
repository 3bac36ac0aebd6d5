package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ItineraryGeneratorInterface is the external text-generation collaborator.
// The engine never depends on how the text was produced.
type ItineraryGeneratorInterface interface {
	GenerateItineraries(ctx context.Context, prompt string, count int) ([]string, error)
}

type OpenAIItineraryClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIItineraryClient() ItineraryGeneratorInterface {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIItineraryClient{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		model:  model,
	}
}

const itinerarySystemPrompt = `You are a travel planner. Produce day-by-day travel itineraries.
Each itinerary must be plain text on a single paragraph, with days marked as "Day 1: ...", "Day 2: ...".
Separate alternative itineraries with a line containing only "---".`

func (c *OpenAIItineraryClient) GenerateItineraries(ctx context.Context, prompt string, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: itinerarySystemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Generate %d alternative itineraries. %s", count, prompt),
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	return splitItineraries(resp.Choices[0].Message.Content, count), nil
}

func splitItineraries(content string, count int) []string {
	parts := strings.Split(content, "---")
	itineraries := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		itineraries = append(itineraries, trimmed)
		if len(itineraries) == count {
			break
		}
	}
	return itineraries
}
