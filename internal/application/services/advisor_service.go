package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// Fixed replies used when the collaborator is unreachable or returns nothing usable.
const (
	DiagnosisFallback = "### Diagnosis unavailable\n\nThe plant doctor is offline right now. " +
		"Check pH (5.5-6.5), EC, water temperature and root colour, then try again later."
	GuideFallback = "Sorry, the guide could not be generated right now. Please try again later."
	TipFallback   = "Check your reservoir pH every day; most hydroponic crops thrive between 5.5 and 6.5."
)

const sourceFallbackLabel = "Source"

var errEmptyReply = errors.New("collaborator returned an empty reply")

const (
	diagnosisInstruction = "You are an expert hydroponics plant pathologist. " +
		"Answer in Markdown with the sections \"Diagnosis\", \"Remediation\" and \"Prevention\"."
	guideInstruction = "You write concise, practical beginner guides to hydroponic gardening in Markdown."
	tipInstruction   = "You are a friendly hydroponics coach."
)

// AdvisorService wraps the free-text advice collaborators
type AdvisorService struct {
	client  ports.GenerativeClient
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewAdvisorService creates a new advisor service
func NewAdvisorService(client ports.GenerativeClient, log *logger.Logger, m *metrics.Metrics) *AdvisorService {
	return &AdvisorService{
		client:  client,
		logger:  log,
		metrics: m,
	}
}

// Diagnose returns a Markdown report for the described symptoms and optional photo.
func (s *AdvisorService) Diagnose(ctx context.Context, req ports.DiagnoseRequest) (string, error) {
	symptoms := strings.TrimSpace(req.Symptoms)
	hasImage := req.Image != nil && len(req.Image.Data) > 0
	if symptoms == "" && !hasImage {
		return "", fmt.Errorf("%w: describe the symptoms or attach a photo", entities.ErrInvalidInput)
	}

	prompt := "Diagnose this hydroponic plant problem."
	if symptoms != "" {
		prompt += "\n\nSymptoms: " + symptoms
	}
	if hasImage {
		prompt += "\n\nA photo of the affected plant is attached."
	}

	genReq := ports.GenerateRequest{
		Prompt:            prompt,
		SystemInstruction: diagnosisInstruction,
	}
	if hasImage {
		genReq.Image = req.Image
	}

	resp, err := s.call(ctx, KindDiagnosis, genReq)
	if err != nil {
		return DiagnosisFallback, nil
	}
	return resp.Text, nil
}

// Guide returns a grounded beginner guide with its sources appended.
func (s *AdvisorService) Guide(ctx context.Context, req ports.GuideRequest) (string, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return "", fmt.Errorf("%w: topic is required", entities.ErrInvalidInput)
	}

	resp, err := s.call(ctx, KindGuide, ports.GenerateRequest{
		Prompt:            fmt.Sprintf("Write a beginner's guide to %s in hydroponics.", topic),
		SystemInstruction: guideInstruction,
		Grounded:          true,
	})
	if err != nil {
		return GuideFallback, nil
	}
	return resp.Text + renderSources(resp.Citations), nil
}

// DailyTip returns a single sentence of advice.
func (s *AdvisorService) DailyTip(ctx context.Context) string {
	resp, err := s.call(ctx, KindTip, ports.GenerateRequest{
		Prompt:            "Give me one short, practical hydroponics tip for today in a single sentence.",
		SystemInstruction: tipInstruction,
	})
	if err != nil {
		return TipFallback
	}
	return strings.TrimSpace(resp.Text)
}

func (s *AdvisorService) call(ctx context.Context, kind string, req ports.GenerateRequest) (*ports.GenerateResponse, error) {
	started := time.Now()
	resp, err := s.client.Generate(ctx, req)
	if err == nil && (resp == nil || strings.TrimSpace(resp.Text) == "") {
		err = errEmptyReply
	}
	observeCall(s.logger, s.metrics, kind, started, err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// renderSources formats citations as a Markdown link list.
func renderSources(citations []ports.Citation) string {
	if len(citations) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n### Sources\n")
	for _, c := range citations {
		label := strings.TrimSpace(c.Title)
		if label == "" {
			label = sourceFallbackLabel
		}
		fmt.Fprintf(&b, "- [%s](%s)\n", label, c.URI)
	}
	return b.String()
}
