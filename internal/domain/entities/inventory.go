package entities

// Equipment represents a piece of hardware used in the garden
type Equipment struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     EquipmentCategory `json:"category"`
	PurchaseDate Date              `json:"purchase_date"`
	Status       EquipmentStatus   `json:"status"`
	Notes        string            `json:"notes"`
	Cost         *float64          `json:"cost,omitempty"`
	SetupID      string            `json:"setup_id,omitempty"`
}

// Ingredient represents a consumable such as a nutrient or pH adjuster
type Ingredient struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Brand    string            `json:"brand"`
	Quantity float64           `json:"quantity"`
	Unit     string            `json:"unit"`
	Purpose  IngredientPurpose `json:"purpose"`
	Notes    string            `json:"notes"`
	Cost     *float64          `json:"cost,omitempty"`
}

// Task represents a gardening chore
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      Date     `json:"date"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}
