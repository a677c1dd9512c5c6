package entities

import (
	"time"

	"github.com/google/uuid"
)

// Setup represents a physical growing system
type Setup struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	SystemType    SystemType `json:"system_type"`
	StartDate     Date       `json:"start_date"`
	ReservoirSize string     `json:"reservoir_size"`
	Location      string     `json:"location"`
	Notes         string     `json:"notes"`
	Cost          *float64   `json:"cost,omitempty"`
	WaterLogs     []WaterLog `json:"water_logs"`
}

// WaterLog is a single water-quality reading. Entries are never edited once appended.
type WaterLog struct {
	ID          string  `json:"id"`
	Date        Date    `json:"date"`
	PH          float64 `json:"ph"`
	EC          float64 `json:"ec"`
	Temperature float64 `json:"temperature"`
	Notes       string  `json:"notes,omitempty"`
}

// Plant represents a plant, optionally housed in a setup
type Plant struct {
	ID                       string          `json:"id"`
	SetupID                  string          `json:"setup_id,omitempty"`
	Species                  string          `json:"species"`
	Variety                  string          `json:"variety"`
	PlantedDate              Date            `json:"planted_date"`
	GerminatedDate           *Date           `json:"germinated_date,omitempty"`
	FloweredDate             *Date           `json:"flowered_date,omitempty"`
	ProjectedGerminationDate *Date           `json:"projected_germination_date,omitempty"`
	ProjectedFloweringDate   *Date           `json:"projected_flowering_date,omitempty"`
	ProjectedHarvestDate     *Date           `json:"projected_harvest_date,omitempty"`
	Status                   PlantStatus     `json:"status"`
	LastChecked              Date            `json:"last_checked"`
	Notes                    string          `json:"notes"`
	Harvests                 []HarvestRecord `json:"harvests"`
	Cost                     *float64        `json:"cost,omitempty"`
}

// HarvestRecord is one harvest taken from a plant
type HarvestRecord struct {
	ID       string  `json:"id"`
	Date     Date    `json:"date"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// NewID returns an opaque unique identifier for a new entity.
func NewID() string {
	return uuid.NewString()
}

// Business logic methods for Setup

// AppendWaterLog adds a reading to the end of the setup's log.
func (s *Setup) AppendWaterLog(log WaterLog) {
	s.WaterLogs = append(s.WaterLogs, log)
}

// LatestWaterLog returns the most recently appended reading, if any.
func (s *Setup) LatestWaterLog() (WaterLog, bool) {
	if len(s.WaterLogs) == 0 {
		return WaterLog{}, false
	}
	return s.WaterLogs[len(s.WaterLogs)-1], true
}

// Business logic methods for Plant

// AddHarvest appends a harvest record.
func (p *Plant) AddHarvest(h HarvestRecord) {
	p.Harvests = append(p.Harvests, h)
}

// TotalHarvested sums harvested quantities for the given unit.
func (p *Plant) TotalHarvested(unit string) float64 {
	var total float64
	for _, h := range p.Harvests {
		if h.Unit == unit {
			total += h.Quantity
		}
	}
	return total
}

// SetStatus changes the status and marks the plant as checked at now.
func (p *Plant) SetStatus(status PlantStatus, now time.Time) {
	p.Status = status
	p.LastChecked = NewDate(now)
}
