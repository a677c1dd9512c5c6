package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrotrack/core/internal/adapters/kvstore"
	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

type failingStore struct {
	*kvstore.MemoryStore
	setErr error
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func newRepos(t *testing.T) (*Repositories, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return New(store, logger.NewNop(), metrics.New()), store
}

func TestSetupRepository_CreateAndAppend(t *testing.T) {
	ctx := context.Background()
	repos, store := newRepos(t)

	setup := &entities.Setup{ID: "s1", Name: "Tower", SystemType: entities.SystemTypeNFT, StartDate: entities.DateOf(2024, 1, 1)}
	require.NoError(t, repos.Setups.Create(ctx, setup))

	updated, err := repos.Setups.AppendWaterLog(ctx, "s1", entities.WaterLog{ID: "w1", PH: 6.0})
	require.NoError(t, err)
	require.Len(t, updated.WaterLogs, 1)

	_, err = repos.Setups.AppendWaterLog(ctx, "missing", entities.WaterLog{ID: "w2"})
	assert.ErrorIs(t, err, entities.ErrSetupNotFound)

	raw, err := store.Get(ctx, ports.KeySetups)
	require.NoError(t, err)
	var persisted []entities.Setup
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "w1", persisted[0].WaterLogs[0].ID)
}

func TestSetupRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	_, err := repos.Setups.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, entities.ErrSetupNotFound)

	require.NoError(t, repos.Setups.Create(ctx, &entities.Setup{ID: "s1", Name: "Bucket"}))
	got, err := repos.Setups.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Bucket", got.Name)
}

func TestPlantRepository_ReadsFromWriteKey(t *testing.T) {
	ctx := context.Background()
	repos, store := newRepos(t)

	require.NoError(t, repos.Plants.Create(ctx, &entities.Plant{ID: "p1", SetupID: "s1", Species: "Basil", PlantedDate: entities.DateOf(2024, 1, 1)}))
	require.NoError(t, repos.Plants.Create(ctx, &entities.Plant{ID: "p2", Species: "Mint", PlantedDate: entities.DateOf(2024, 1, 2)}))

	_, err := store.Get(ctx, ports.KeyPlants)
	require.NoError(t, err)
	_, err = store.Get(ctx, ports.KeySetups)
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	// A fresh repository over the same store sees the same plants.
	reloaded := NewPlantRepository(store, nil, nil)
	all, err := reloaded.List(ctx, ports.PlantFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inSetup, err := reloaded.List(ctx, ports.PlantFilter{SetupID: "s1"})
	require.NoError(t, err)
	require.Len(t, inSetup, 1)
	assert.Equal(t, "p1", inSetup[0].ID)
}

func TestPlantRepository_UpdateFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)
	require.NoError(t, repos.Plants.Create(ctx, &entities.Plant{ID: "p1", Status: entities.PlantStatusHealthy}))

	boom := errors.New("boom")
	_, err := repos.Plants.Update(ctx, "p1", func(p *entities.Plant) error {
		p.Status = entities.PlantStatusStruggling
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repos.Plants.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entities.PlantStatusHealthy, got.Status)

	_, err = repos.Plants.Update(ctx, "p9", func(*entities.Plant) error { return nil })
	assert.ErrorIs(t, err, entities.ErrPlantNotFound)
}

func TestCollection_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: kvstore.NewMemoryStore(), setErr: errors.New("quota exceeded")}
	repo := NewTaskRepository(store, logger.NewNop(), nil)

	err := repo.Create(ctx, &entities.Task{ID: "t1", Title: "Clean pump"})
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestCollection_CorruptValue(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, ports.KeyIngredients, []byte("{not json")))

	_, err := NewIngredientRepository(store, nil, nil).List(ctx)
	assert.ErrorContains(t, err, "decode hydro_ingredients")
}

func TestCollection_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repos.Equipment.Create(ctx, &entities.Equipment{ID: entities.NewID(), Name: "Timer"}))
		}()
	}
	wg.Wait()

	all, err := repos.Equipment.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

func TestTaskRepository_Update(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)
	require.NoError(t, repos.Tasks.Create(ctx, &entities.Task{ID: "t1", Title: "Flush lines"}))

	got, err := repos.Tasks.Update(ctx, "t1", func(t *entities.Task) error {
		t.Toggle()
		return nil
	})
	require.NoError(t, err)
	assert.True(t, got.Completed)

	_, err = repos.Tasks.Update(ctx, "t2", func(*entities.Task) error { return nil })
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}
