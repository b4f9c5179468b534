package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/handlers/v1alpha1/mappers"
	serviceMappers "github.com/dentamatch/marketplace/internal/service/mappers"
)

// Apply handles POST /applications/{jobId}.
func (h *ServiceHandler) Apply(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())
	if !user.IsProfessional() {
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error{Error: "forbidden", Message: "only professionals may apply to a job"})
		return
	}

	jobID, err := uuidParam(r, "jobId")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	var body api.ApplicationCreate
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	application, err := h.applicationSrv.Apply(r.Context(), mappers.ApplicationFormApi(jobID, user, body))
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, serviceMappers.ApplicationToApi(*application))
}

// ListApplications handles GET /applications?jobId=.
func (h *ServiceHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	var jobID *uuid.UUID
	if raw := r.URL.Query().Get("jobId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			replyValidationError(w, r, "jobId must be a valid uuid")
			return
		}
		jobID = &id
	}

	applications, err := h.applicationSrv.ListApplications(r.Context(), user, jobID)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.ApplicationListToApi(applications))
}

// ListJobApplications handles GET /jobs/{id}/applications.
func (h *ServiceHandler) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	jobID, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	applications, err := h.applicationSrv.ListApplications(r.Context(), user, &jobID)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.ApplicationListToApi(applications))
}

// UpdateApplicationStatus handles PUT /applications/{id}/status.
func (h *ServiceHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	var body api.ApplicationStatusUpdate
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	application, err := h.applicationSrv.UpdateApplicationStatus(r.Context(), user, id, body.Status)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.ApplicationToApi(*application))
}
