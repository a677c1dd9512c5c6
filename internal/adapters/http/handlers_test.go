package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrotrack/core/internal/adapters/kvstore"
	"github.com/hydrotrack/core/internal/adapters/repository"
	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/domain/entities"
	"github.com/hydrotrack/core/internal/domain/lifecycle"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/ports"
)

type stubClient struct {
	text string
	err  error
	last ports.GenerateRequest
}

func (s *stubClient) Generate(_ context.Context, req ports.GenerateRequest) (*ports.GenerateResponse, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &ports.GenerateResponse{Text: s.text}, nil
}

type testEnv struct {
	echo     *echo.Echo
	handlers *Handlers
	client   *stubClient
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.NewNop()
	now := func() time.Time { return time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC) }
	repos := repository.New(kvstore.NewMemoryStore(), log, nil)
	client := &stubClient{}
	v := NewValidator()

	garden := services.NewGardenService(repos.Setups, repos.Plants, v.Engine(), log, now)
	projection := services.NewProjectionService(client, log, nil, now)
	inventory := services.NewInventoryService(repos.Equipment, repos.Ingredients, repos.Tasks, v.Engine(), log, now)
	advisor := services.NewAdvisorService(client, log, nil)
	backup := services.NewBackupService(repos.Setups, repos.Plants, repos.Equipment, repos.Ingredients, repos.Tasks, nil, log, now)

	e := echo.New()
	e.Validator = v

	return &testEnv{
		echo:   e,
		client: client,
		handlers: &Handlers{
			Setups:    NewSetupHandler(garden, log),
			Plants:    NewPlantHandler(garden, projection, log),
			Inventory: NewInventoryHandler(inventory, log),
			Advisor:   NewAdvisorHandler(advisor, log),
			Backup:    NewBackupHandler(backup, log),
		},
	}
}

// call runs h against a JSON request and returns the recorder and handler error.
func (env *testEnv) call(h echo.HandlerFunc, method, target, body string, params ...string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	return rec, h(c)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected *echo.HTTPError, got %v", err)
	return he.Code
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestSetupHandler(t *testing.T) {
	env := newEnv(t)
	h := env.handlers.Setups

	rec, err := env.call(h.CreateSetup, http.MethodPost, "/api/v1/setups", `{"name":"Closet DWC","system_type":"DWC","start_date":"2024-01-05"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	setup := decode[entities.Setup](t, rec)
	assert.Equal(t, "2024-01-05", setup.StartDate.String())

	rec, err = env.call(h.AddWaterLog, http.MethodPost, "/", `{"ph":5.9,"ec":1.2,"temperature":19.5}`, "id", setup.ID)
	require.NoError(t, err)
	assert.Len(t, decode[entities.Setup](t, rec).WaterLogs, 1)

	rec, err = env.call(h.ListSetups, http.MethodGet, "/api/v1/setups", "")
	require.NoError(t, err)
	assert.Equal(t, 1, decode[ListResponse[entities.Setup]](t, rec).Total)

	_, err = env.call(h.GetSetup, http.MethodGet, "/", "", "id", "missing")
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestSetupHandler_Validation(t *testing.T) {
	env := newEnv(t)

	_, err := env.call(env.handlers.Setups.CreateSetup, http.MethodPost, "/", `{"name":"Tub","system_type":"Bathtub"}`)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	_, err = env.call(env.handlers.Setups.CreateSetup, http.MethodPost, "/", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	_, err = env.call(env.handlers.Setups.CreateSetup, http.MethodPost, "/", `{"name":"Tub","system_type":"NFT","start_date":"01/02/2024"}`)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestPlantHandler_Lifecycle(t *testing.T) {
	env := newEnv(t)
	h := env.handlers.Plants

	rec, err := env.call(h.CreatePlant, http.MethodPost, "/", `{"species":"Basil","planted_date":"2024-01-01"}`)
	require.NoError(t, err)
	plant := decode[entities.Plant](t, rec)
	assert.Equal(t, entities.PlantStatusHealthy, plant.Status)

	rec, err = env.call(h.RecordMilestone, http.MethodPut, "/", `{"germinated_date":"2024-01-07"}`, "id", plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-07", decode[entities.Plant](t, rec).GerminatedDate.String())

	rec, err = env.call(h.UpdateStatus, http.MethodPut, "/", `{"status":"Needs Attention"}`, "id", plant.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PlantStatusNeedsAttention, decode[entities.Plant](t, rec).Status)

	rec, err = env.call(h.AddHarvest, http.MethodPost, "/", `{"quantity":35,"unit":"g"}`, "id", plant.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, err = env.call(h.GetTimeline, http.MethodGet, "/", "", "id", plant.ID)
	require.NoError(t, err)
	summary := decode[lifecycle.Summary](t, rec)
	require.Len(t, summary.Milestones, 2)
	assert.Equal(t, lifecycle.MilestoneGerminated, summary.Milestones[1].Name)
	assert.Equal(t, 1.0, summary.Completion)

	rec, err = env.call(h.ListPlants, http.MethodGet, "/?setup_id=other", "")
	require.NoError(t, err)
	assert.Equal(t, 0, decode[ListResponse[entities.Plant]](t, rec).Total)

	_, err = env.call(h.GetPlant, http.MethodGet, "/", "", "id", "missing")
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))

	_, err = env.call(h.CreatePlant, http.MethodPost, "/", `{"species":"Basil","setup_id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestPlantHandler_Project(t *testing.T) {
	env := newEnv(t)
	env.client.text = "```json\n{\"daysToGerminate\":5,\"daysToFlower\":20,\"daysToHarvest\":45}\n```"

	rec, err := env.call(env.handlers.Plants.Project, http.MethodPost, "/", `{"species":"Basil","system_type":"NFT"}`)
	require.NoError(t, err)

	resp := decode[ProjectionResponse](t, rec)
	assert.True(t, resp.Available)
	assert.Equal(t, "2024-02-06", resp.Germination.String())
	assert.Equal(t, "2024-02-21", resp.Flowering.String())
	assert.Equal(t, "2024-03-17", resp.Harvest.String())
}

func TestPlantHandler_ProjectUnavailable(t *testing.T) {
	env := newEnv(t)
	env.client.err = errors.New("network down")

	rec, err := env.call(env.handlers.Plants.Project, http.MethodPost, "/", `{"species":"Basil"}`)
	require.NoError(t, err)

	resp := decode[ProjectionResponse](t, rec)
	assert.False(t, resp.Available)
	assert.Nil(t, resp.Harvest)

	_, err = env.call(env.handlers.Plants.Project, http.MethodPost, "/", `{"species":""}`)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestPlantHandler_CreateWithProjection(t *testing.T) {
	t.Run("unavailable keeps submitted dates", func(t *testing.T) {
		env := newEnv(t)
		env.client.err = errors.New("network down")

		rec, err := env.call(env.handlers.Plants.CreatePlant, http.MethodPost, "/",
			`{"species":"Basil","project":true,"projected_harvest_date":"2024-05-01"}`)
		require.NoError(t, err)

		plant := decode[entities.Plant](t, rec)
		require.NotNil(t, plant.ProjectedHarvestDate)
		assert.Equal(t, "2024-05-01", plant.ProjectedHarvestDate.String())
		assert.Nil(t, plant.ProjectedGerminationDate)
		assert.Nil(t, plant.ProjectedFloweringDate)
	})

	t.Run("available fills all three from the setup system", func(t *testing.T) {
		env := newEnv(t)
		env.client.text = `{"daysToGerminate":5,"daysToFlower":20,"daysToHarvest":45}`

		rec, err := env.call(env.handlers.Setups.CreateSetup, http.MethodPost, "/", `{"name":"Rail","system_type":"NFT"}`)
		require.NoError(t, err)
		setup := decode[entities.Setup](t, rec)

		rec, err = env.call(env.handlers.Plants.CreatePlant, http.MethodPost, "/",
			`{"species":"Basil","setup_id":"`+setup.ID+`","project":true,"projected_harvest_date":"2024-05-01"}`)
		require.NoError(t, err)

		plant := decode[entities.Plant](t, rec)
		assert.Equal(t, "2024-02-06", plant.ProjectedGerminationDate.String())
		assert.Equal(t, "2024-02-21", plant.ProjectedFloweringDate.String())
		assert.Equal(t, "2024-03-17", plant.ProjectedHarvestDate.String())
		assert.Contains(t, env.client.last.Prompt, "NFT")
	})

	t.Run("without the flag no call is made", func(t *testing.T) {
		env := newEnv(t)
		env.client.text = `{"daysToGerminate":5}`

		rec, err := env.call(env.handlers.Plants.CreatePlant, http.MethodPost, "/", `{"species":"Basil"}`)
		require.NoError(t, err)

		assert.Nil(t, decode[entities.Plant](t, rec).ProjectedGerminationDate)
		assert.Empty(t, env.client.last.Prompt)
	})
}

func TestInventoryHandler(t *testing.T) {
	env := newEnv(t)
	h := env.handlers.Inventory

	rec, err := env.call(h.CreateEquipment, http.MethodPost, "/", `{"name":"LED panel","category":"Lighting"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, err = env.call(h.CreateIngredient, http.MethodPost, "/", `{"name":"CalMag","quantity":1,"unit":"l","purpose":"Additive"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, err = env.call(h.CreateTask, http.MethodPost, "/", `{"title":"Clean pump filter","priority":"High"}`)
	require.NoError(t, err)
	task := decode[entities.Task](t, rec)

	rec, err = env.call(h.ToggleTask, http.MethodPost, "/", "", "id", task.ID)
	require.NoError(t, err)
	assert.True(t, decode[entities.Task](t, rec).Completed)

	for _, fn := range []echo.HandlerFunc{h.ListEquipment, h.ListIngredients, h.ListTasks} {
		rec, err = env.call(fn, http.MethodGet, "/", "")
		require.NoError(t, err)
		assert.Equal(t, 1, decode[ListResponse[json.RawMessage]](t, rec).Total)
	}

	_, err = env.call(h.ToggleTask, http.MethodPost, "/", "", "id", "missing")
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))

	_, err = env.call(h.CreateTask, http.MethodPost, "/", `{"title":"x","priority":"Urgent"}`)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestAdvisorHandler_Diagnose(t *testing.T) {
	env := newEnv(t)
	env.client.text = "## Diagnosis\nTip burn"
	img := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47})

	rec, err := env.call(env.handlers.Advisor.Diagnose, http.MethodPost, "/",
		`{"symptoms":"brown tips","image_base64":"`+img+`","image_mime_type":"image/png"}`)
	require.NoError(t, err)

	assert.Equal(t, "## Diagnosis\nTip burn", decode[AdviceResponse](t, rec).Markdown)
	require.NotNil(t, env.client.last.Image)
	assert.Equal(t, "image/png", env.client.last.Image.MIMEType)

	_, err = env.call(env.handlers.Advisor.Diagnose, http.MethodPost, "/", `{"symptoms":""}`)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	_, err = env.call(env.handlers.Advisor.Diagnose, http.MethodPost, "/", `{"image_base64":"`+img+`"}`)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestAdvisorHandler_FallbacksAreOK(t *testing.T) {
	env := newEnv(t)
	env.client.err = errors.New("no key")

	rec, err := env.call(env.handlers.Advisor.Guide, http.MethodPost, "/", `{"topic":"Kratky"}`)
	require.NoError(t, err)
	assert.Equal(t, services.GuideFallback, decode[AdviceResponse](t, rec).Markdown)

	rec, err = env.call(env.handlers.Advisor.Tip, http.MethodGet, "/", "")
	require.NoError(t, err)
	assert.Equal(t, services.TipFallback, decode[TipResponse](t, rec).Tip)
}

func TestBackupHandler(t *testing.T) {
	env := newEnv(t)

	_, err := env.call(env.handlers.Setups.CreateSetup, http.MethodPost, "/", `{"name":"Tower","system_type":"Aeroponic"}`)
	require.NoError(t, err)

	rec, err := env.call(env.handlers.Backup.Export, http.MethodGet, "/", "")
	require.NoError(t, err)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	assert.Len(t, decode[services.Snapshot](t, rec).Setups, 1)

	_, err = env.call(env.handlers.Backup.Upload, http.MethodPost, "/", "")
	assert.Equal(t, http.StatusServiceUnavailable, httpCode(t, err))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(entities.ErrInvalidDate))
	assert.Equal(t, http.StatusNotFound, statusFor(entities.ErrTaskNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("disk full")))
}
