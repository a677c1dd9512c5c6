package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/hydrotrack/core/internal/infrastructure/config"
	"github.com/hydrotrack/core/internal/ports"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), config.GenAIConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	client, err := NewOrOffline(context.Background(), config.GenAIConfig{})
	assert.Error(t, err)
	assert.IsType(t, Offline{}, client)
}

func TestNew_Model(t *testing.T) {
	client, err := New(context.Background(), config.GenAIConfig{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, defaultModel, client.Model())

	client, err = New(context.Background(), config.GenAIConfig{APIKey: "test-key", Model: " gemini-2.5-pro "})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", client.Model())
}

func TestOffline_AlwaysFails(t *testing.T) {
	_, err := Offline{}.Generate(context.Background(), ports.GenerateRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBuildContents_ImageFirst(t *testing.T) {
	contents := buildContents(ports.GenerateRequest{
		Prompt: "what is wrong with this leaf?",
		Image:  &ports.InlineImage{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}},
	})

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	require.NotNil(t, contents[0].Parts[0].InlineData)
	assert.Equal(t, "image/jpeg", contents[0].Parts[0].InlineData.MIMEType)
	assert.Equal(t, "what is wrong with this leaf?", contents[0].Parts[1].Text)
}

func TestBuildConfig(t *testing.T) {
	cfg := buildConfig(ports.GenerateRequest{JSON: true, Grounded: true, SystemInstruction: "be brief"})
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	assert.Empty(t, cfg.Tools)
	require.NotNil(t, cfg.SystemInstruction)

	cfg = buildConfig(ports.GenerateRequest{Grounded: true})
	require.Len(t, cfg.Tools, 1)
	assert.NotNil(t, cfg.Tools[0].GoogleSearch)
	assert.Nil(t, cfg.SystemInstruction)
}

func TestConvert(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: "# Guide\n"},
				{Text: "Keep pH near 6."},
			}},
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{URI: "https://example.org/ph", Title: "pH basics"}},
					{Web: &genai.GroundingChunkWeb{URI: "https://example.org/ec"}},
					{},
				},
			},
		}},
	}

	out, err := convert(resp)
	require.NoError(t, err)
	assert.Equal(t, "# Guide\nKeep pH near 6.", out.Text)
	assert.Equal(t, []ports.Citation{
		{URI: "https://example.org/ph", Title: "pH basics"},
		{URI: "https://example.org/ec"},
	}, out.Citations)
}

func TestConvert_Empty(t *testing.T) {
	_, err := convert(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = convert(nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
