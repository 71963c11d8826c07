// Package ai wraps the two Gemini collaborators of the dashboard: the
// free-text assistant used when a search matches nothing, and the
// prompt-driven image transformer. Both are opaque remote calls;
// failures become user-facing messages and never touch catalog state.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/logger"
	"github.com/mynav/mynav/internal/utils"
)

// DefaultBaseURL is the Gemini REST endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// systemInstruction steers the text assistant. Kept in the dashboard's
// primary locale.
const systemInstruction = "你是一个集成在个人导航仪表盘中的乐于助人、简洁的 AI 助手。请使用中文回答。回答应简短、直接、有帮助。支持 Markdown 格式。"

// User-facing messages for the text assistant.
const (
	msgMissingKey = "API Key 未配置，无法使用 AI 功能。"
	msgEmptyReply = "未生成回复。"
	msgCallFailed = "抱歉，获取 AI 回复时遇到错误，请稍后再试。"
)

// dataURLPattern matches "data:<mime>;base64,<payload>".
var dataURLPattern = regexp.MustCompile(`^data:(.+);base64,(.+)$`)

// Config holds the Gemini client settings.
type Config struct {
	APIKey     string        // empty disables both collaborators
	BaseURL    string        // defaults to DefaultBaseURL
	TextModel  string        // ex: gemini-2.5-flash
	ImageModel string        // ex: gemini-2.5-flash-image
	Timeout    time.Duration // per-call HTTP timeout
}

// Client calls the Gemini generateContent API.
type Client struct {
	cfg    Config
	http   *http.Client
	logger logger.Logger
}

// New creates a Gemini client.
func New(cfg Config, log logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: log,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// Ask sends a free-text query to the assistant and returns either the
// answer or a user-facing failure string. It never returns an error:
// remote failures are logged and converted at this boundary.
func (c *Client) Ask(ctx context.Context, prompt string) string {
	if !c.Enabled() {
		c.logger.Warn("gemini api key not configured, ai query refused")
		return msgMissingKey
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{
			Parts: []part{{Text: systemInstruction}},
		},
	}

	resp, err := c.generate(ctx, c.cfg.TextModel, req)
	if err != nil {
		c.logger.Error("gemini text call failed", logger.Error(err))
		return msgCallFailed
	}

	for _, p := range resp.parts() {
		if p.Text != "" {
			return p.Text
		}
	}
	return msgEmptyReply
}

// EditImage sends a base64 data-URL image plus an instruction and
// returns the transformed image as a PNG data URL. An empty result
// with a nil error means the model produced no image.
func (c *Client) EditImage(ctx context.Context, imageDataURL, prompt string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("%w: api key not configured", domain.ErrRemote)
	}

	m := dataURLPattern.FindStringSubmatch(imageDataURL)
	if m == nil {
		return "", fmt.Errorf("%w: image must be a base64 data URL", domain.ErrValidation)
	}
	mimeType, data := m[1], m[2]

	req := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: data}},
				{Text: prompt},
			},
		}},
	}

	resp, err := c.generate(ctx, c.cfg.ImageModel, req)
	if err != nil {
		c.logger.Error("gemini image call failed", logger.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrRemote, err)
	}

	for _, p := range resp.parts() {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return "data:image/png;base64," + p.InlineData.Data, nil
		}
	}
	return "", nil
}

func (c *Client) generate(ctx context.Context, model string, payload generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, model)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// Wire types for the generateContent call.

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) parts() []part {
	if len(r.Candidates) == 0 {
		return nil
	}
	return r.Candidates[0].Content.Parts
}
