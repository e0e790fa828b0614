package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"solar-dispatch/internal/analysis"
	"solar-dispatch/internal/api/models"
	"solar-dispatch/internal/api/store"
	"solar-dispatch/internal/config"
	"solar-dispatch/internal/data"
	"solar-dispatch/internal/dispatch"
	"solar-dispatch/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SimulateHandler handles simulation runs and stored-run lookups.
type SimulateHandler struct {
	store *store.RunStore
}

// NewSimulateHandler creates a new simulate handler backed by the given store.
func NewSimulateHandler(s *store.RunStore) *SimulateHandler {
	return &SimulateHandler{store: s}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := buildPlantConfig(req.Plant)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PLANT",
				Message: err.Error(),
			},
		})
		return
	}

	days, err := data.ReadDays(strings.NewReader(req.PriceData), strings.NewReader(req.SunshineData))
	if err != nil {
		code := "INVALID_DATA"
		status := http.StatusBadRequest
		if errors.Is(err, data.ErrNoCommonDays) {
			code = "NO_COMMON_DAYS"
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	sims := make([]analysis.SimulatedDay, 0, len(days))
	dayResults := make(map[string]*model.DayResult, len(days))
	for _, d := range days {
		res, err := dispatch.SimulateDay(d.Prices, d.Sunshine, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "SIMULATION_ERROR",
					Message: err.Error(),
				},
			})
			return
		}
		sims = append(sims, analysis.SimulatedDay{Date: d.Date, Result: res})
		dayResults[d.Date] = res
	}

	run := &store.Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Plant:     cfg,
		Summary:   analysis.Summarize(sims),
		Days:      dayResults,
	}
	h.store.Put(run)

	resp := models.SimulateResponse{
		ID:        run.ID,
		Status:    "completed",
		CreatedAt: run.CreatedAt,
		DayCount:  len(days),
		Summary:   run.Summary,
	}
	if req.Options.IncludeDays {
		resp.Days = dayResults
	}
	c.JSON(http.StatusOK, resp)
}

// GetRun handles GET /api/v1/runs/:id
func (h *SimulateHandler) GetRun(c *gin.Context) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RUN_NOT_FOUND",
				Message: "no stored run with that id",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.SimulateResponse{
		ID:        run.ID,
		Status:    "completed",
		CreatedAt: run.CreatedAt,
		DayCount:  len(run.Days),
		Summary:   run.Summary,
	})
}

// GetRunDay handles GET /api/v1/runs/:id/days/:date — the per-day drill-down
// with the full action list, SoC trace, solar power and prices.
func (h *SimulateHandler) GetRunDay(c *gin.Context) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RUN_NOT_FOUND",
				Message: "no stored run with that id",
			},
		})
		return
	}
	res, ok := run.Days[c.Param("date")]
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DAY_NOT_FOUND",
				Message: "run has no simulated day for that date",
			},
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

// buildPlantConfig overlays request fields onto the default reference plant.
func buildPlantConfig(p models.PlantConfig) model.PlantConfig {
	merged := config.MergePlant(config.DefaultPlant(), config.PlantConfig{
		Name:                p.Name,
		CapacityMWh:         p.CapacityMWh,
		PowerMW:             p.PowerMW,
		ChargeEfficiency:    p.ChargeEfficiency,
		DischargeEfficiency: p.DischargeEfficiency,
		InstalledSolarMW:    p.InstalledSolarMW,
		MinSellHour:         p.MinSellHour,
	})
	return merged.ToModelConfig()
}
