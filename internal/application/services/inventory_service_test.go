package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrotrack/core/internal/application/validation"
	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/ports"
)

func newInventory(t *testing.T) *InventoryService {
	t.Helper()
	repos := newTestRepos()
	return NewInventoryService(repos.Equipment, repos.Ingredients, repos.Tasks, validation.New(), logger.NewNop(), fixedClock(jan16))
}

func TestInventoryService_Equipment(t *testing.T) {
	ctx := context.Background()
	svc := newInventory(t)

	item, err := svc.CreateEquipment(ctx, ports.CreateEquipmentRequest{Name: "Air pump", Category: entities.EquipmentCategoryPump})
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusActive, item.Status)
	assert.Equal(t, "2024-01-16", item.PurchaseDate.String())

	_, err = svc.CreateEquipment(ctx, ports.CreateEquipmentRequest{Name: "Lamp", Category: "Gadget"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	items, err := svc.ListEquipment(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestInventoryService_Ingredients(t *testing.T) {
	ctx := context.Background()
	svc := newInventory(t)

	item, err := svc.CreateIngredient(ctx, ports.CreateIngredientRequest{
		Name:     "pH Down",
		Quantity: 500,
		Unit:     "ml",
		Purpose:  entities.IngredientPurposePHAdjuster,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.IngredientPurposePHAdjuster, item.Purpose)

	_, err = svc.CreateIngredient(ctx, ports.CreateIngredientRequest{Name: "Mystery", Quantity: -1, Purpose: entities.IngredientPurposeNutrient})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	items, err := svc.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestInventoryService_Tasks(t *testing.T) {
	ctx := context.Background()
	svc := newInventory(t)

	task, err := svc.CreateTask(ctx, ports.CreateTaskRequest{Title: "Change reservoir water"})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityMedium, task.Priority)
	assert.False(t, task.Completed)

	toggled, err := svc.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	_, err = svc.ToggleTask(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	_, err = svc.CreateTask(ctx, ports.CreateTaskRequest{Title: " "})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
