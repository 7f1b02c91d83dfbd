package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/nikhilarora068/cibil-analyzer/dto"
	"github.com/nikhilarora068/cibil-analyzer/observability"
)

// advisorSystemPrompt frames every advisory exchange. The report summary
// is prepended to the user prompt, so the model answers against the
// extracted numbers rather than from thin air.
const advisorSystemPrompt = "You are a credit analyst. Be concise, numeric where possible, and actionable."

// AdvisorClient calls an OpenAI-compatible chat completions API with the
// report summary as grounding context. A circuit breaker keeps a
// flapping upstream from stalling every /ask request.
type AdvisorClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
	metrics    *observability.Metrics
}

func NewAdvisorClient(baseURL, apiKey, model string, timeout time.Duration, logger *zap.Logger, metrics *observability.Metrics) *AdvisorClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "advisor",
		Timeout: 30 * time.Second,
	})

	return &AdvisorClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		breaker:    breaker,
		logger:     logger,
		metrics:    metrics,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Ask sends the stored report context plus the user's free-form prompt
// to the advisor and returns its answer. Returns dto.ErrAdvisorDisabled
// when no API key is configured.
func (c *AdvisorClient) Ask(ctx context.Context, reportContext, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", dto.ErrAdvisorDisabled
	}

	result, err := c.breaker.Execute(func() (any, error) {
		body, err := json.Marshal(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: advisorSystemPrompt},
				{Role: "user", Content: reportContext + "\n\nUser prompt: " + prompt},
			},
			Temperature: 0.2,
			MaxTokens:   500,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal chat request: %w", err)
		}

		url := c.baseURL + "/chat/completions"
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("create http request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, fmt.Errorf("http call to advisor: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("advisor returned status %d", resp.StatusCode)
		}

		var out chatResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode advisor response: %w", err)
		}
		if len(out.Choices) == 0 {
			return nil, fmt.Errorf("advisor returned no choices")
		}
		return out.Choices[0].Message.Content, nil
	})

	if err != nil {
		c.metrics.IncrAdvisorError()
		c.logger.Warn("advisor call failed", zap.Error(err))
		return "", fmt.Errorf("advisor call: %w", err)
	}

	return result.(string), nil
}
