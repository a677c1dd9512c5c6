// Package lifecycle derives a plant's display timeline and growth progress
// from its recorded and projected milestone dates.
package lifecycle

import (
	"sort"
	"time"

	"github.com/hydrotrack/core/internal/domain/entities"
)

// FallbackHorizon is the growth span assumed when no harvest date is projected.
const FallbackHorizon = 30 * 24 * time.Hour

// minSpan keeps the completion ratio finite when the target precedes planting.
const minSpan = time.Millisecond

type MilestoneName string

const (
	MilestonePlanted      MilestoneName = "Planted"
	MilestoneGerminated   MilestoneName = "Germinated"
	MilestoneFlowering    MilestoneName = "Flowering"
	MilestoneHarvestReady MilestoneName = "Harvest Ready"
)

type Source string

const (
	SourceActual    Source = "actual"
	SourceProjected Source = "projected"
)

// Milestone is one emitted point on a plant's timeline.
type Milestone struct {
	Name   MilestoneName `json:"name"`
	Date   entities.Date `json:"date"`
	Source Source        `json:"source"`
}

// Summary bundles the timeline with the derived progress values.
type Summary struct {
	PlantID       string        `json:"plant_id"`
	Milestones    []Milestone   `json:"milestones"`
	Completion    float64       `json:"completion"`
	Target        entities.Date `json:"target"`
	DaysRemaining int           `json:"days_remaining"`
}

// resolve picks the actual date when recorded, otherwise the projected one.
func resolve(actual, projected *entities.Date) (*entities.Date, Source) {
	if actual != nil {
		return actual, SourceActual
	}
	if projected != nil {
		return projected, SourceProjected
	}
	return nil, ""
}

// Timeline returns the plant's milestones ordered by date. Milestones whose
// date cannot be resolved are omitted; equal dates keep the order
// Planted, Germinated, Flowering, Harvest Ready.
func Timeline(p entities.Plant) []Milestone {
	milestones := []Milestone{
		{Name: MilestonePlanted, Date: p.PlantedDate, Source: SourceActual},
	}

	if d, src := resolve(p.GerminatedDate, p.ProjectedGerminationDate); d != nil {
		milestones = append(milestones, Milestone{Name: MilestoneGerminated, Date: *d, Source: src})
	}
	if d, src := resolve(p.FloweredDate, p.ProjectedFloweringDate); d != nil {
		milestones = append(milestones, Milestone{Name: MilestoneFlowering, Date: *d, Source: src})
	}
	if p.ProjectedHarvestDate != nil {
		milestones = append(milestones, Milestone{
			Name:   MilestoneHarvestReady,
			Date:   *p.ProjectedHarvestDate,
			Source: SourceProjected,
		})
	}

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Date.Before(milestones[j].Date.Time)
	})

	return milestones
}

// Target returns the projected harvest date, or the fallback horizon past planting.
func Target(p entities.Plant) time.Time {
	if p.ProjectedHarvestDate != nil {
		return p.ProjectedHarvestDate.Time
	}
	return p.PlantedDate.Add(FallbackHorizon)
}

// Completion returns the elapsed share of the planting-to-target span at now,
// clamped to [0, 1].
func Completion(p entities.Plant, now time.Time) float64 {
	start := p.PlantedDate.Time
	span := Target(p).Sub(start)
	if span < minSpan {
		span = minSpan
	}

	fraction := float64(now.Sub(start)) / float64(span)
	switch {
	case fraction < 0:
		return 0
	case fraction > 1:
		return 1
	}
	return fraction
}

// Project computes the full summary for p at now.
func Project(p entities.Plant, now time.Time) Summary {
	target := Target(p)

	remaining := int(target.Sub(now).Hours() / 24)
	if remaining < 0 {
		remaining = 0
	}

	return Summary{
		PlantID:       p.ID,
		Milestones:    Timeline(p),
		Completion:    Completion(p, now),
		Target:        entities.NewDate(target),
		DaysRemaining: remaining,
	}
}
