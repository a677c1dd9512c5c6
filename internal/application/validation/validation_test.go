package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/ports"
)

func TestStruct_Enum(t *testing.T) {
	v := New()

	err := Struct(v, ports.UpdatePlantStatusRequest{Status: entities.PlantStatusNeedsAttention})
	require.NoError(t, err)

	err = Struct(v, ports.UpdatePlantStatusRequest{Status: "Wilting"})
	require.ErrorIs(t, err, entities.ErrInvalidInput)
	assert.Contains(t, err.Error(), `unsupported value "Wilting"`)
}

func TestStruct_Required(t *testing.T) {
	err := Struct(New(), ports.CreatePlantRequest{})
	require.ErrorIs(t, err, entities.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Species is required")
}

func TestStruct_OptionalEnumMayBeEmpty(t *testing.T) {
	err := Struct(New(), ports.CreateTaskRequest{Title: "Change reservoir water"})
	assert.NoError(t, err)
}
