// Package gemini implements the generative collaborator on Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hydrotrack/core/internal/infrastructure/config"
	"github.com/hydrotrack/core/internal/ports"
)

var (
	ErrNotConfigured = errors.New("generative client not configured")
	ErrEmptyResponse = errors.New("empty generative response")
)

const defaultModel = "gemini-2.5-flash"

// Client calls Models.GenerateContent once per request. It never retries.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client from explicit configuration.
func New(ctx context.Context, cfg config.GenAIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Generate sends a single prompt, with an optional inline image.
func (c *Client) Generate(ctx context.Context, req ports.GenerateRequest) (*ports.GenerateResponse, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, buildContents(req), buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}
	return convert(resp)
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

func buildContents(req ports.GenerateRequest) []*genai.Content {
	parts := make([]*genai.Part, 0, 2)
	if req.Image != nil && len(req.Image.Data) > 0 {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func buildConfig(req ports.GenerateRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}

	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}
	// Search grounding cannot be combined with a JSON response type.
	if req.Grounded && !req.JSON {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	return cfg
}

func convert(resp *genai.GenerateContentResponse) (*ports.GenerateResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}
	candidate := resp.Candidates[0]

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}

	out := &ports.GenerateResponse{Text: text.String()}

	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			out.Citations = append(out.Citations, ports.Citation{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}

	return out, nil
}

// Offline stands in when no API key is configured; every call fails so
// callers fall back to their offline answers.
type Offline struct{}

func (Offline) Generate(context.Context, ports.GenerateRequest) (*ports.GenerateResponse, error) {
	return nil, ErrNotConfigured
}

// NewOrOffline returns a live client, or Offline when none can be built.
func NewOrOffline(ctx context.Context, cfg config.GenAIConfig) (ports.GenerativeClient, error) {
	client, err := New(ctx, cfg)
	if err != nil {
		return Offline{}, err
	}
	return client, nil
}
