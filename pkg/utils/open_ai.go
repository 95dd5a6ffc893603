package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// TripPlanClientInterface abstracts the model provider behind plan generation
// and trip embeddings.
type TripPlanClientInterface interface {
	GenerateTripPlan(ctx context.Context, systemInstructions, userPrompt string) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAITripPlanClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITripPlanClient(apiKey, model string) TripPlanClientInterface {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAITripPlanClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAITripPlanClient) GenerateTripPlan(ctx context.Context, systemInstructions, userPrompt string) (string, error) {
	if len(userPrompt) > 100 {
		log.Printf("Generating trip plan with prompt: %s...", userPrompt[:100])
	} else {
		log.Printf("Generating trip plan with prompt: %s", userPrompt)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstructions},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.10,
		MaxTokens:   2185,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response generated")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAITripPlanClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("no embedding returned")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
