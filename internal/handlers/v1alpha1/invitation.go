package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/handlers/v1alpha1/mappers"
	serviceMappers "github.com/dentamatch/marketplace/internal/service/mappers"
)

// InviteProfessionals handles POST /jobs/{id}/invitations.
func (h *ServiceHandler) InviteProfessionals(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())
	if !user.IsClinic() {
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error{Error: "forbidden", Message: "only clinics may invite professionals"})
		return
	}

	jobID, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	var body api.InvitationCreate
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	result, err := h.invitationSrv.Invite(r.Context(), mappers.InvitationFormApi(jobID, user, body))
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.InvitationBatchResultToApi(result))
}

// ListJobInvitations handles GET /jobs/{id}/invitations.
func (h *ServiceHandler) ListJobInvitations(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	jobID, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	invitations, err := h.invitationSrv.ListInvitations(r.Context(), user, &jobID)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.InvitationListToApi(invitations))
}

// ListInvitations handles GET /invitations.
func (h *ServiceHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	invitations, err := h.invitationSrv.ListInvitations(r.Context(), user, nil)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.InvitationListToApi(invitations))
}

// RespondInvitation handles POST /invitations/{id}/response.
func (h *ServiceHandler) RespondInvitation(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	var body api.InvitationResponse
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	invitation, err := h.invitationSrv.Respond(r.Context(), user, id, body.Response == "accept")
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.InvitationToApi(*invitation))
}
