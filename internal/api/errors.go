package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yourusername/paddock/internal/models"
	"github.com/yourusername/paddock/internal/service"
)

// APIError is the body of every error response.
type APIError struct {
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// ErrorEnvelope wraps APIError as {"error": {...}}.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// errInvalidID is returned for path identifiers that are not canonical UUIDs.
var errInvalidID = errors.New("identifier must be a 36-character UUID")

func respondError(c *gin.Context, status int, code string, err error, details ...string) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code, Details: details}})
}

// respondFault maps a core error onto a status code. Not-found becomes 404;
// constraint violations, failed result batches and invalid input become 400;
// anything else is a 500.
func (h *Handler) respondFault(c *gin.Context, err error) {
	var ce *models.ConstraintError
	var batch *service.BatchError

	switch {
	case errors.Is(err, models.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", err)
	case errors.As(err, &batch):
		details := make([]string, len(batch.Failures))
		for i, f := range batch.Failures {
			details[i] = f.Error()
		}
		respondError(c, http.StatusBadRequest, "RACE_RESULTS_FAILED", err, details...)
	case errors.As(err, &ce):
		respondError(c, http.StatusBadRequest, constraintCode(ce), err)
	case errors.Is(err, models.ErrInvalidNationality):
		respondError(c, http.StatusBadRequest, "INVALID_NATIONALITY", err)
	default:
		h.log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		respondError(c, http.StatusInternalServerError, "INTERNAL", errors.New("internal server error"))
	}
}

func constraintCode(ce *models.ConstraintError) string {
	switch ce.Kind {
	case models.UniqueViolation:
		return "ALREADY_EXISTS"
	case models.ForeignKeyViolation:
		return "REFERENCE_NOT_FOUND"
	default:
		return "CONSTRAINT_VIOLATION"
	}
}

// validationDetails renders validator errors as "field: rule" lines.
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, len(verrs))
	for i, fe := range verrs {
		field := fe.Namespace()
		if dot := strings.IndexByte(field, '.'); dot >= 0 {
			field = field[dot+1:]
		}
		if fe.Param() != "" {
			details[i] = fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param())
		} else {
			details[i] = fmt.Sprintf("%s: %s", field, fe.Tag())
		}
	}
	return details
}
