package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/orato-ai/orato/internal/domain"
)

const defaultModelName = "gemini-2.5-flash"

// Compile-time assertion that GeminiClient satisfies the domain port.
var _ domain.ModelClient = (*GeminiClient)(nil)

// GeminiClient implements domain.ModelClient against the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a ModelClient backed by the Gemini API using an
// API key. An empty modelName selects the default model.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key must not be empty")
	}
	if modelName == "" {
		modelName = defaultModelName
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// EvaluateSpeech sends the evaluation rubric and returns the raw model text.
func (g *GeminiClient) EvaluateSpeech(ctx context.Context, req domain.EvaluationRequest) (string, error) {
	mode := domain.DeriveMode(req.HasFace, req.HasVoice)
	prompt := BuildEvaluationPrompt(mode, req.Transcript, req.AudioFeatures)
	return g.generate(ctx, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	})
}

// SuggestTips asks for two improvement tips and returns the raw model text.
func (g *GeminiClient) SuggestTips(ctx context.Context, clarity, confidence int, mode domain.Mode) (string, error) {
	prompt := BuildTipsPrompt(clarity, confidence, mode)
	return g.generate(ctx, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	})
}

// AnalyzeAudio forwards the audio bytes inline with the fixed instruction and
// returns the model's free-text analysis unmodified.
func (g *GeminiClient) AnalyzeAudio(ctx context.Context, data []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "audio/webm"
	}
	parts := []*genai.Part{
		genai.NewPartFromText(AudioAnalysisInstruction),
		genai.NewPartFromBytes(data, mimeType),
	}
	return g.generate(ctx, []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	})
}

func (g *GeminiClient) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	temp := float32(0.4)
	topP := float32(0.9)

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: 2048,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}
