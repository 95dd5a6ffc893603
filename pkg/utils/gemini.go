package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiTripPlanClient implements TripPlanClientInterface using Google's
// Gemini models.
type GeminiTripPlanClient struct {
	client     *genai.Client
	model      string
	jsonOutput bool
}

func NewGeminiTripPlanClient(apiKey, model string, jsonOutput bool) (TripPlanClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTripPlanClient{
		client:     client,
		model:      model,
		jsonOutput: jsonOutput,
	}, nil
}

func (c *GeminiTripPlanClient) GenerateTripPlan(ctx context.Context, systemInstructions, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstructions)},
	}
	if c.jsonOutput {
		m.ResponseMIMEType = "application/json"
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// GetEmbedding generates a simple vector embedding for text.
// The free tier has no dedicated embedding endpoint, so this uses a
// hash-based fallback that is stable for identical inputs.
func (c *GeminiTripPlanClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return c.textToVector(text), nil
}

func (c *GeminiTripPlanClient) textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := c.hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func (c *GeminiTripPlanClient) hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}

func (c *GeminiTripPlanClient) Close() error {
	return c.client.Close()
}

// NewTripPlanClient selects a provider implementation based on config.
// jsonOutput asks providers that support it to emit raw JSON responses.
func NewTripPlanClient(provider, apiKey, model string, jsonOutput bool) (TripPlanClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai", "":
		return NewOpenAITripPlanClient(apiKey, model), nil
	case "gemini":
		return NewGeminiTripPlanClient(apiKey, model, jsonOutput)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
