package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/models"
	"github.com/yourusername/paddock/internal/repository"
)

// createRace persists the race and its embedded results. Results that fail
// leave the race and the other results stored; the batch error names them.
func (h *Handler) createRace(c *gin.Context) {
	var body RacePayload
	if !h.bind(c, &body) {
		return
	}

	race, err := h.races.CreateWithResults(c.Request.Context(), body.toModel(uuid.Nil))
	if err != nil {
		h.respondFault(c, err)
		return
	}
	c.JSON(http.StatusCreated, IDResponse{ID: race.ID})
}

// appendRaceResults answers 404 before writing anything when the race is unknown.
func (h *Handler) appendRaceResults(c *gin.Context) {
	raceID, ok := pathID(c)
	if !ok {
		return
	}
	var body RaceResultsPayload
	if !h.bind(c, &body) {
		return
	}

	if _, err := h.races.AppendResults(c.Request.Context(), raceID, resultModels(body.RaceResults)); err != nil {
		h.respondFault(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// updateRaceResult overwrites a result, keeping the race it belongs to.
func (h *Handler) updateRaceResult(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body RaceResultPayload
	if !h.bind(c, &body) {
		return
	}

	if _, err := h.races.UpdateResult(c.Request.Context(), body.toModel(id)); err != nil {
		h.respondFault(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// resultsFor lists the results of one race, car or driver after checking
// that the parent exists.
func resultsFor[T any](h *Handler, parent gateway[T], query func(id uuid.UUID) models.RaceResultQuery) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		item, err := parent.FindByID(ctx, id, repository.NoRelations)
		if err != nil {
			h.respondFault(c, err)
			return
		}
		if item == nil {
			h.respondFault(c, models.ErrNotFound)
			return
		}

		results, err := h.repos.RaceResult.FindByQuery(ctx, query(id), repository.RaceResultRelations)
		if err != nil {
			h.respondFault(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

// listCars filters by make and model substrings when either query parameter
// is present.
func (h *Handler) listCars(c *gin.Context) {
	var query models.CarQuery
	if mk, ok := c.GetQuery("make"); ok && mk != "" {
		query.Make = &mk
	}
	if model, ok := c.GetQuery("model"); ok && model != "" {
		query.Model = &model
	}

	cars, err := h.repos.Car.FindAllByQuery(c.Request.Context(), query, repository.CarRelations)
	if err != nil {
		h.respondFault(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}
