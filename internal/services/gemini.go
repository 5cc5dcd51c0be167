package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"alfredoptarigan/resume-checker/internal/config"
)

// ErrEmptyResponse means the model answered without any text.
var ErrEmptyResponse = errors.New("empty response from generation service")

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiService struct {
	models    contentGenerator
	modelName string
	metrics   *GenerationMetrics
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, metrics *GenerationMetrics) (GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiService(client.Models, cfg.Model, metrics), nil
}

func newGeminiService(models contentGenerator, modelName string, metrics *GenerationMetrics) *geminiService {
	return &geminiService{
		models:    models,
		modelName: modelName,
		metrics:   metrics,
	}
}

// GenerateText implements GeminiService. It makes exactly one request.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		g.metrics.observe(outcomeError, time.Since(start))
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		g.metrics.observe(outcomeEmpty, time.Since(start))
		log.Println("❌ Gemini API returned nil response")
		return "", ErrEmptyResponse
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		g.metrics.observe(outcomeEmpty, time.Since(start))
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			log.Printf("❌ Gemini blocked the prompt: %s", resp.PromptFeedback.BlockReason)
		} else {
			log.Println("❌ No text content in Gemini response")
		}
		return "", ErrEmptyResponse
	}

	g.metrics.observe(outcomeSuccess, time.Since(start))
	log.Printf("📊 Gemini response received: %d characters", len(text))

	return text, nil
}
