// Package assistant generates free text with a hosted Gemini model.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/config"

	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("text generation is not configured")
	ErrEmptyResponse = errors.New("model returned an empty response")
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Gemini struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// NewGemini connects to the Gemini API. Without an API key every call fails with ErrNotConfigured.
func NewGemini(ctx context.Context, cfg config.Gemini) (*Gemini, error) {
	g := &Gemini{model: cfg.Model, timeout: cfg.Timeout}
	if cfg.APIKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	g.models = client.Models
	return g, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.models == nil {
		return "", ErrNotConfigured
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
