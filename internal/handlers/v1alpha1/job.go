package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/handlers/v1alpha1/mappers"
	serviceMappers "github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store/model"
)

// detailsBlockMatches checks that exactly the type's own details block
// is present on the payload.
func detailsBlockMatches(jobType string, resource api.JobCreate) bool {
	switch jobType {
	case model.JobTypeTemporary:
		return resource.Temporary != nil && resource.MultiDay == nil && resource.Permanent == nil
	case model.JobTypeMultiDayConsulting:
		return resource.MultiDay != nil && resource.Temporary == nil && resource.Permanent == nil
	case model.JobTypePermanent:
		return resource.Permanent != nil && resource.Temporary == nil && resource.MultiDay == nil
	}
	return false
}

// CreateJob handles POST /jobs/{type}.
func (h *ServiceHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())
	if !user.IsClinic() {
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error{Error: "forbidden", Message: "only clinics may post jobs"})
		return
	}

	jobType := pathParam(r, "type")
	switch jobType {
	case model.JobTypeTemporary, model.JobTypeMultiDayConsulting, model.JobTypePermanent:
	default:
		replyValidationError(w, r, "unknown job type "+jobType)
		return
	}

	var body api.JobCreate
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}
	if !detailsBlockMatches(jobType, body) {
		replyValidationError(w, r, "payload must carry exactly the "+jobType+" details block")
		return
	}

	job, err := h.jobSrv.CreateJob(r.Context(), mappers.JobCreateFormApi(jobType, user, body))
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, serviceMappers.JobToApi(*job))
}

// GetJob handles GET /jobs/{id}.
func (h *ServiceHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	job, err := h.jobSrv.GetJob(r.Context(), id)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.JobToApi(*job))
}

// ListJobs handles GET /jobs.
func (h *ServiceHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	jobs, err := h.jobSrv.ListJobs(r.Context(), user)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.JobListToApi(jobs))
}

// UpdateJob handles PUT /jobs/{id}.
func (h *ServiceHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	var body api.JobUpdate
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	job, err := h.jobSrv.UpdateJob(r.Context(), mappers.JobUpdateFormApi(id, user, body))
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.JobToApi(*job))
}

// UpdateJobStatus handles PUT /jobs/{id}/status.
func (h *ServiceHandler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	var body api.StatusUpdate
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	job, err := h.jobSrv.UpdateJobStatus(r.Context(), mappers.StatusUpdateFormApi(id, user, body))
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.JobToApi(*job))
}

// DeleteJob handles DELETE /jobs/{id}?force=bool.
func (h *ServiceHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	force := r.URL.Query().Get("force") == "true"

	result, err := h.deletionSrv.DeleteJob(r.Context(), user, id, force)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, mappers.DeleteJobResultToApi(result))
}
