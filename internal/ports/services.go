package ports

import (
	"context"

	"github.com/hydrotrack/core/internal/domain/entities"
)

// GenerativeClient is the external text-generation collaborator.
type GenerativeClient interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// InlineImage is an image sent alongside a prompt.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

type GenerateRequest struct {
	Prompt            string
	SystemInstruction string
	Image             *InlineImage
	// JSON asks the collaborator for an application/json reply.
	JSON bool
	// Grounded enables web search grounding and citation metadata.
	Grounded bool
}

type GenerateResponse struct {
	Text      string
	Citations []Citation
}

// Citation is a grounding source returned with a generated answer.
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Setup related types
type CreateSetupRequest struct {
	Name          string              `json:"name" validate:"required,max=200"`
	SystemType    entities.SystemType `json:"system_type" validate:"required,enum"`
	StartDate     *entities.Date      `json:"start_date"`
	ReservoirSize string              `json:"reservoir_size" validate:"max=50"`
	Location      string              `json:"location" validate:"max=200"`
	Notes         string              `json:"notes" validate:"max=2000"`
	Cost          *float64            `json:"cost" validate:"omitempty,min=0"`
}

type AddWaterLogRequest struct {
	Date        *entities.Date `json:"date"`
	PH          float64        `json:"ph" validate:"min=0,max=14"`
	EC          float64        `json:"ec" validate:"min=0"`
	Temperature float64        `json:"temperature" validate:"min=-10,max=60"`
	Notes       string         `json:"notes" validate:"max=1000"`
}

// Plant related types
type CreatePlantRequest struct {
	SetupID                  string         `json:"setup_id"`
	Species                  string         `json:"species" validate:"required,max=200"`
	Variety                  string         `json:"variety" validate:"max=200"`
	PlantedDate              *entities.Date `json:"planted_date"`
	ProjectedGerminationDate *entities.Date `json:"projected_germination_date"`
	ProjectedFloweringDate   *entities.Date `json:"projected_flowering_date"`
	ProjectedHarvestDate     *entities.Date `json:"projected_harvest_date"`
	Notes                    string         `json:"notes" validate:"max=2000"`
	Cost                     *float64       `json:"cost" validate:"omitempty,min=0"`
	// Project fills the projected dates from a fresh projection when one is available.
	Project bool `json:"project"`
}

type RecordMilestoneRequest struct {
	GerminatedDate *entities.Date `json:"germinated_date"`
	FloweredDate   *entities.Date `json:"flowered_date"`
}

type UpdatePlantStatusRequest struct {
	Status entities.PlantStatus `json:"status" validate:"required,enum"`
}

type AddHarvestRequest struct {
	Date     *entities.Date `json:"date"`
	Quantity float64        `json:"quantity" validate:"gt=0"`
	Unit     string         `json:"unit" validate:"required,max=20"`
}

// Projection related types
type ProjectionRequest struct {
	Species    string `json:"species"`
	Variety    string `json:"variety"`
	SystemType string `json:"system_type"`
}

// Inventory related types
type CreateEquipmentRequest struct {
	Name         string                     `json:"name" validate:"required,max=200"`
	Category     entities.EquipmentCategory `json:"category" validate:"required,enum"`
	PurchaseDate *entities.Date             `json:"purchase_date"`
	Status       entities.EquipmentStatus   `json:"status" validate:"omitempty,enum"`
	Notes        string                     `json:"notes" validate:"max=2000"`
	Cost         *float64                   `json:"cost" validate:"omitempty,min=0"`
	SetupID      string                     `json:"setup_id"`
}

type CreateIngredientRequest struct {
	Name     string                     `json:"name" validate:"required,max=200"`
	Brand    string                     `json:"brand" validate:"max=200"`
	Quantity float64                    `json:"quantity" validate:"min=0"`
	Unit     string                     `json:"unit" validate:"max=20"`
	Purpose  entities.IngredientPurpose `json:"purpose" validate:"required,enum"`
	Notes    string                     `json:"notes" validate:"max=2000"`
	Cost     *float64                   `json:"cost" validate:"omitempty,min=0"`
}

type CreateTaskRequest struct {
	Title    string            `json:"title" validate:"required,max=500"`
	Date     *entities.Date    `json:"date"`
	Priority entities.Priority `json:"priority" validate:"omitempty,enum"`
}

// Advisor related types
type DiagnoseRequest struct {
	Symptoms string       `json:"symptoms"`
	Image    *InlineImage `json:"-"`
}

type GuideRequest struct {
	Topic string `json:"topic"`
}

// Response types for common structures
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
