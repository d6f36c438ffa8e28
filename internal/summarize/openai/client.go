package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/summarize"
)

// Client talks to an OpenAI-compatible chat/completions endpoint and
// implements summarize.Completer.
type Client struct {
	cfg        common.SummarizerConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg common.SummarizerConfig, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.3
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 500
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

const systemPrompt = "You are a clinical documentation assistant. Summarize the " +
	"medical document transcript you are given. Focus on key medical entities: " +
	"diagnoses, medications with dosages, procedures, lab results with values, " +
	"and follow-up instructions. Be concise and factual; never invent findings " +
	"that are not in the transcript. Return ONLY JSON that matches the provided " +
	"JSON Schema."

// Complete sends the transcript for summarization and returns the extracted
// summary string. Responses that do not match the summary schema are treated
// as backend failures.
func (c *Client) Complete(ctx context.Context, transcript string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("summarize.complete.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"max_tokens", c.cfg.MaxOutputTokens,
		"transcript_len", len(transcript),
	)

	schema := summarize.SummaryJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxOutputTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
			{"role": "user", "content": "Transcript:\n\n" + transcript},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("summarize.complete.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("%w: %v", summarize.ErrBackend, httpErr)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("summarize.complete.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("%w: decode response: %v", summarize.ErrBackend, err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("summarize.complete.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("%w: no choices in response", summarize.ErrBackend)
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := summarize.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("summarize.complete.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("%w: %v", summarize.ErrBackend, err)
	}

	var out struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return "", fmt.Errorf("%w: unmarshal summary: %v", summarize.ErrBackend, err)
	}

	c.log.Info("summarize.complete.ok",
		"req_id", rid,
		"summary_len", len(out.Summary),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Summary, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completions http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("completions response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("completions status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
