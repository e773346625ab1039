package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/paddock/internal/logger"
	"github.com/yourusername/paddock/internal/metrics"
	"github.com/yourusername/paddock/internal/models"
	"github.com/yourusername/paddock/internal/repository"
	"github.com/yourusername/paddock/internal/service"
)

// Handler serves the entity endpoints.
type Handler struct {
	repos    *repository.Repositories
	races    *service.RaceService
	teams    *service.TeamService
	audit    *logger.AuditLogger
	log      *logrus.Logger
	validate *validator.Validate
}

// NewHandler wires the handler from the repositories and a base logger.
func NewHandler(repos *repository.Repositories, log *logrus.Logger) *Handler {
	audit := logger.NewAuditLogger(log)
	return &Handler{
		repos:    repos,
		races:    service.NewRaceService(repos.Race, repos.RaceResult, audit),
		teams:    service.NewTeamService(repos.Team, repos.Driver, audit),
		audit:    audit,
		log:      log,
		validate: newValidator(),
	}
}

// gateway is the read/delete part every repository shares.
type gateway[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID, rel repository.Relations) (*T, error)
	FindAll(ctx context.Context, rel repository.Relations) ([]*T, error)
	Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error)
}

// payload maps a validated request body onto an entity with the given id.
type payload[T any] interface {
	toModel(id uuid.UUID) *T
}

// saver persists an entity. Repositories and the team service both satisfy it.
type saver[T any] interface {
	Save(ctx context.Context, entity *T) (*T, error)
}

// IDResponse is the body of a successful create.
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

// pathID parses the :id parameter, answering 400 when it is malformed.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	if len(raw) != 36 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", errInvalidID)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", errInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// bind decodes the JSON body into dst and validates it, answering 400 on failure.
func (h *Handler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_BODY", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", errors.New("payload validation failed"), validationDetails(err)...)
		return false
	}
	return true
}

func list[T any](h *Handler, gw gateway[T], rel repository.Relations) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := gw.FindAll(c.Request.Context(), rel)
		if err != nil {
			h.respondFault(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func get[T any](h *Handler, gw gateway[T], rel repository.Relations) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		item, err := gw.FindByID(c.Request.Context(), id, rel)
		if err != nil {
			h.respondFault(c, err)
			return
		}
		if item == nil {
			h.respondFault(c, models.ErrNotFound)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// create saves a new entity from a P body and answers 201 with its id.
func create[T any, P payload[T]](h *Handler, entity string, save saver[T], idOf func(*T) uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body P
		if !h.bind(c, &body) {
			return
		}
		saved, err := save.Save(c.Request.Context(), body.toModel(uuid.Nil))
		if err != nil {
			h.respondFault(c, err)
			return
		}
		id := idOf(saved)
		h.audit.LogEntitySaved(entity, id.String(), true)
		metrics.RecordEntityWrite(entity, "created")
		c.JSON(http.StatusCreated, IDResponse{ID: id})
	}
}

// update answers 404 unless the entity exists, then overwrites the whole
// row with the body under the path id and answers 204.
func update[T any, P payload[T]](h *Handler, entity string, gw gateway[T], save saver[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var body P
		if !h.bind(c, &body) {
			return
		}

		ctx := c.Request.Context()
		existing, err := gw.FindByID(ctx, id, repository.NoRelations)
		if err != nil {
			h.respondFault(c, err)
			return
		}
		if existing == nil {
			h.respondFault(c, models.ErrNotFound)
			return
		}

		if _, err := save.Save(ctx, body.toModel(id)); err != nil {
			h.respondFault(c, err)
			return
		}
		h.audit.LogEntitySaved(entity, id.String(), false)
		metrics.RecordEntityWrite(entity, "updated")
		c.Status(http.StatusNoContent)
	}
}

// remove answers 404 when the delete matched nothing, 204 otherwise.
func remove[T any](h *Handler, entity string, gw gateway[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		outcome, err := gw.Delete(c.Request.Context(), id)
		if err != nil {
			h.respondFault(c, err)
			return
		}
		h.audit.LogEntityDeleted(entity, id.String(), outcome.Affected)
		if !outcome.Found() {
			h.respondFault(c, models.ErrNotFound)
			return
		}
		metrics.RecordEntityWrite(entity, "deleted")
		c.Status(http.StatusNoContent)
	}
}
