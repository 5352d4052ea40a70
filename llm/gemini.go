package llm

import (
	"context"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultModel = "gemini-2.0-flash"

	// generateTimeout bounds a single model call. The surrounding request
	// context can still cancel earlier; Gemini itself enforces no deadline.
	generateTimeout = 60 * time.Second
)

// Client is the one capability the pipeline needs from a model provider:
// a prompt in, generated text out.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiClient talks to the Gemini API. Safe for concurrent use.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// ProvideGeminiClient builds the client from GEMINI_API_KEY and
// GEMINI_MODEL for dependency injection.
func ProvideGeminiClient() (Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, status.Error(codes.FailedPrecondition, "GEMINI_API_KEY is not set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return NewGeminiClient(context.Background(), apiKey, model)
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create gemini client: %v", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateText runs a single completion. Whitespace-only model output is a
// provider failure, never a valid empty answer.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", status.Errorf(codes.Internal, "gemini generate: %v", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", status.Error(codes.Internal, "gemini returned an empty response")
	}

	return text, nil
}
