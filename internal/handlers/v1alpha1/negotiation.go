package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/handlers/v1alpha1/mappers"
	serviceMappers "github.com/dentamatch/marketplace/internal/service/mappers"
)

// CreateNegotiation handles POST /applications/{id}/negotiations.
func (h *ServiceHandler) CreateNegotiation(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	applicationID, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	var body api.NegotiationCreate
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	negotiation, err := h.negotiationSrv.CreateNegotiation(r.Context(), user, mappers.NegotiationFormApi(applicationID, body))
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, serviceMappers.NegotiationToApi(*negotiation))
}

// ListNegotiations handles GET /applications/{id}/negotiations.
func (h *ServiceHandler) ListNegotiations(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	applicationID, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	negotiations, err := h.negotiationSrv.ListNegotiations(r.Context(), user, applicationID)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.NegotiationListToApi(negotiations))
}

// RespondNegotiation handles
// PUT /applications/{id}/negotiations/{negotiationId}/response.
func (h *ServiceHandler) RespondNegotiation(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	applicationID, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}
	negotiationID, err := uuidParam(r, "negotiationId")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	var body api.NegotiationResponse
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	negotiation, err := h.negotiationSrv.RespondNegotiation(r.Context(), user, applicationID, negotiationID, body.Action, body.CounterPay, body.Note)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.NegotiationToApi(*negotiation))
}
