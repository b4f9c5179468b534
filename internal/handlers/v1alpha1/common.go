package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/service"
)

// replyError maps the service error taxonomy onto HTTP status codes and
// the structured error body every endpoint returns.
func replyError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var kind string

	switch err.(type) {
	case *service.ErrResourceNotFound:
		status, kind = http.StatusNotFound, "not_found"
	case *service.ErrForbidden:
		status, kind = http.StatusForbidden, "forbidden"
	case *service.ErrValidation:
		status, kind = http.StatusBadRequest, "validation_error"
	case *service.ErrInvalidTransition:
		status, kind = http.StatusConflict, "invalid_transition"
	case *service.ErrConflict:
		status, kind = http.StatusConflict, "conflict"
	default:
		zap.S().Named("handler").Errorw("request failed", "error", err, "path", r.URL.Path)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.Error{Error: "internal_error", Message: "unexpected internal error"})
		return
	}

	render.Status(r, status)
	render.JSON(w, r, api.Error{Error: kind, Message: err.Error()})
}

func replyValidationError(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, api.Error{Error: "validation_error", Message: message})
}

// decodeBody parses the JSON request body and runs struct validation.
func (h *ServiceHandler) decodeBody(r *http.Request, v any) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return service.NewErrValidation("malformed request body")
	}
	return h.validator.Struct(v)
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(pathParam(r, name))
	if err != nil {
		return uuid.Nil, service.NewErrValidation(name + " must be a valid uuid")
	}
	return id, nil
}
