package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/middleware"
	"github.com/SscSPs/multinav_crm/internal/platform/config"
)

const (
	apiKeyHeader       = "x-goog-api-key"
	defaultTemperature = 0.3
)

const reportPrompt = `Analyze the following health navigation service data for the period %s to %s.
You are an expert public health analyst. Your goal is to generate a high-level summary with key insights and actionable recommendations for a program report.

Instructions:
1. Your response MUST be a valid JSON array of objects with no text before or after it.
2. Each object must have "title" (string), "insight" (string), and an optional "recommendation" (string) key.
3. Focus on trends, significant findings and potential gaps identified within the specified date range.
4. Keep insights concise, data-driven and suitable for a formal report.

Data summaries for analysis:
%s`

// GeminiClient asks the Gemini generateContent endpoint for report insights.
type GeminiClient struct {
	client *resty.Client
	apiKey string
	model  string
}

var _ portssvc.InsightNarrator = (*GeminiClient)(nil)

// NewGeminiClient builds a client from configuration. A client without an API
// key is still returned; every call then fails with ErrNarrativeNotConfigured.
func NewGeminiClient(cfg *config.Config) *GeminiClient {
	timeout := cfg.NarrativeTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.GeminiBaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{
		client: client,
		apiKey: strings.TrimSpace(cfg.GeminiAPIKey),
		model:  cfg.GeminiModel,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schema struct {
	Type       string            `json:"type"`
	Items      *schema           `json:"items,omitempty"`
	Properties map[string]schema `json:"properties,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
	ResponseSchema   schema  `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

var insightSchema = schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]schema{
			"title":          {Type: "STRING"},
			"insight":        {Type: "STRING"},
			"recommendation": {Type: "STRING"},
		},
		Required: []string{"title", "insight"},
	},
}

// Narrate sends the summary to the model and returns the raw JSON text of the
// first candidate. Shape validation is left to the caller.
func (g *GeminiClient) Narrate(ctx context.Context, req domain.InsightRequest) ([]byte, error) {
	if g.apiKey == "" {
		return nil, apperrors.ErrNarrativeNotConfigured
	}

	summary, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode insight request: %w", err)
	}

	body := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf(reportPrompt, req.DateRange.Start, req.DateRange.End, summary)}},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			Temperature:      defaultTemperature,
			ResponseSchema:   insightSchema,
		},
	}

	var result generateResponse
	var failure apiError
	start := time.Now()
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, g.apiKey).
		SetPathParam("model", g.model).
		SetBody(body).
		SetResult(&result).
		SetError(&failure).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNarrativeService, err)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Narrative service responded",
		slog.String("model", g.model),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", time.Since(start)))

	if resp.IsError() {
		msg := failure.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrNarrativeService, resp.StatusCode(), msg)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: response carried no candidates", apperrors.ErrNarrativeService)
	}

	var text strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return []byte(stripFence(text.String())), nil
}

// stripFence removes a markdown code fence the model sometimes wraps JSON in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
