package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// Offsets used when the collaborator omits an individual field.
const (
	DefaultDaysToGerminate = 7
	DefaultDaysToFlower    = 30
	DefaultDaysToHarvest   = 60
)

// MaxProjectedDays bounds a single predicted offset.
const MaxProjectedDays = 3650

var (
	errUnparsable = errors.New("projection reply has no JSON object")
	errOutOfRange = errors.New("projection offset out of range")
)

const projectionInstruction = "You are a hydroponics horticulturist. Reply with a single JSON object and nothing else."

// Projection is a set of projected milestone dates. When Available is false
// the dates are zero and must not be used.
type Projection struct {
	Available   bool          `json:"available"`
	Germination entities.Date `json:"germination"`
	Flowering   entities.Date `json:"flowering"`
	Harvest     entities.Date `json:"harvest"`
}

// ApplyTo copies the projected dates onto req. An unavailable projection
// leaves req untouched.
func (p Projection) ApplyTo(req *ports.CreatePlantRequest) {
	if !p.Available || req == nil {
		return
	}
	req.ProjectedGerminationDate = p.Germination.Ptr()
	req.ProjectedFloweringDate = p.Flowering.Ptr()
	req.ProjectedHarvestDate = p.Harvest.Ptr()
}

// projectionReply is the collaborator's JSON payload.
type projectionReply struct {
	DaysToGerminate *float64 `json:"daysToGerminate"`
	DaysToFlower    *float64 `json:"daysToFlower"`
	DaysToHarvest   *float64 `json:"daysToHarvest"`
}

// ProjectionService turns predicted day offsets into calendar dates.
type ProjectionService struct {
	client  ports.GenerativeClient
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewProjectionService creates a new projection service. A nil now uses time.Now.
func NewProjectionService(client ports.GenerativeClient, log *logger.Logger, m *metrics.Metrics, now func() time.Time) *ProjectionService {
	return &ProjectionService{
		client:  client,
		logger:  log,
		metrics: m,
		now:     clock(now),
	}
}

// Project asks the collaborator for milestone offsets and anchors them at the
// current instant. Collaborator failures yield an unavailable projection, not
// an error; only an empty species is rejected.
func (s *ProjectionService) Project(ctx context.Context, req ports.ProjectionRequest) (Projection, error) {
	species := strings.TrimSpace(req.Species)
	if species == "" {
		return Projection{}, fmt.Errorf("%w: species is required", entities.ErrInvalidInput)
	}

	anchor := s.now()
	started := time.Now()

	resp, err := s.client.Generate(ctx, ports.GenerateRequest{
		Prompt:            projectionPrompt(species, strings.TrimSpace(req.Variety), strings.TrimSpace(req.SystemType)),
		SystemInstruction: projectionInstruction,
		JSON:              true,
	})

	var reply projectionReply
	if err == nil && resp == nil {
		err = errUnparsable
	}
	if err == nil {
		reply, err = parseProjectionReply(resp.Text)
	}
	observeCall(s.logger, s.metrics, KindProjection, started, err)
	if err != nil {
		return Projection{}, nil
	}

	base := entities.NewDate(anchor)
	return Projection{
		Available:   true,
		Germination: base.AddDays(offset(reply.DaysToGerminate, DefaultDaysToGerminate)),
		Flowering:   base.AddDays(offset(reply.DaysToFlower, DefaultDaysToFlower)),
		Harvest:     base.AddDays(offset(reply.DaysToHarvest, DefaultDaysToHarvest)),
	}, nil
}

func projectionPrompt(species, variety, system string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estimate the growth milestones for %s", species)
	if variety != "" {
		fmt.Fprintf(&b, " (variety: %s)", variety)
	}
	if system != "" {
		fmt.Fprintf(&b, " grown in a %s hydroponic system", system)
	}
	b.WriteString(". Count days from sowing a seed. ")
	b.WriteString(`Return JSON with integer fields "daysToGerminate", "daysToFlower" and "daysToHarvest".`)
	return b.String()
}

// parseProjectionReply decodes the first JSON object in text, which may be
// wrapped in prose or markdown fences. Every present offset must be a whole
// number of days within [0, MaxProjectedDays] once rounded.
func parseProjectionReply(text string) (projectionReply, error) {
	for i := strings.IndexByte(text, '{'); i >= 0; {
		var reply projectionReply
		err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&reply)
		if err == nil {
			return reply, validateReply(reply)
		}

		var syntaxErr *json.SyntaxError
		if !errors.As(err, &syntaxErr) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return projectionReply{}, fmt.Errorf("decode projection reply: %w", err)
		}

		next := strings.IndexByte(text[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return projectionReply{}, errUnparsable
}

func validateReply(r projectionReply) error {
	for name, v := range map[string]*float64{
		"daysToGerminate": r.DaysToGerminate,
		"daysToFlower":    r.DaysToFlower,
		"daysToHarvest":   r.DaysToHarvest,
	} {
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 || math.Round(*v) > MaxProjectedDays {
			return fmt.Errorf("%w: %s=%v", errOutOfRange, name, *v)
		}
	}
	return nil
}

// offset rounds a validated offset, or falls back when the field was omitted.
func offset(v *float64, fallback int) int {
	if v == nil {
		return fallback
	}
	return int(math.Round(*v))
}
