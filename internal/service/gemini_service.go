package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"trait_tracer_backend/internal/config"
	"trait_tracer_backend/pkg/logger"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrGeminiUnavailable is returned when the generative API is disabled,
// unreachable or the breaker is open. Callers substitute fallback content on
// it; it never propagates to a handler.
var ErrGeminiUnavailable = errors.New("generative api unavailable")

// GeminiService is the shared client for the generative-language API. Both
// question generation and candidate evaluation go through GenerateJSON, which
// requests constrained JSON output and runs behind a circuit breaker.
type GeminiService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[*genai.GenerateContentResponse]
}

func NewGeminiService(cfg config.GeminiConfig) (*GeminiService, error) {
	s := &GeminiService{
		model:   cfg.Model,
		timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
	}
	if s.timeout <= 0 {
		s.timeout = 60 * time.Second
	}

	if cfg.Disabled || cfg.APIKey == "" {
		// No client: every call reports unavailable and fallbacks kick in.
		return s, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	s.client = client

	s.breaker = gobreaker.NewCircuitBreaker[*genai.GenerateContentResponse](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Warn("Gemini circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return s, nil
}

// Available reports whether live generation is configured at all.
func (s *GeminiService) Available() bool {
	return s.client != nil
}

// GenerateJSON runs one prompt and returns the raw JSON text of the response.
// genCfg carries the per-operation sampling parameters and response schema.
func (s *GeminiService) GenerateJSON(ctx context.Context, prompt string, genCfg *genai.GenerateContentConfig) (string, error) {
	if s.client == nil {
		return "", ErrGeminiUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if genCfg == nil {
		genCfg = &genai.GenerateContentConfig{}
	}
	genCfg.ResponseMIMEType = "application/json"

	result, err := s.breaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return s.client.Models.GenerateContent(callCtx, s.model, genai.Text(prompt), genCfg)
	})
	if err != nil {
		logger.Log.Warn("Gemini generation failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGeminiUnavailable, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGeminiUnavailable)
	}
	return text, nil
}
