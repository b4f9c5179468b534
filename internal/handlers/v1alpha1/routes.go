package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// route is one entry of the handler's route table. The table is a plain
// data structure resolved once at startup; parameterized segments are
// compiled to matchers by the router when the table is registered.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

func (h *ServiceHandler) routes() []route {
	return []route{
		{http.MethodPost, "/jobs/{type}", h.CreateJob},
		{http.MethodGet, "/jobs", h.ListJobs},
		{http.MethodGet, "/jobs/{id}", h.GetJob},
		{http.MethodPut, "/jobs/{id}", h.UpdateJob},
		{http.MethodDelete, "/jobs/{id}", h.DeleteJob},
		{http.MethodPut, "/jobs/{id}/status", h.UpdateJobStatus},

		{http.MethodGet, "/jobs/{id}/applications", h.ListJobApplications},

		{http.MethodPost, "/jobs/{id}/invitations", h.InviteProfessionals},
		{http.MethodGet, "/jobs/{id}/invitations", h.ListJobInvitations},
		{http.MethodGet, "/invitations", h.ListInvitations},
		{http.MethodPost, "/invitations/{id}/response", h.RespondInvitation},

		{http.MethodPost, "/applications/{jobId}", h.Apply},
		{http.MethodGet, "/applications", h.ListApplications},
		{http.MethodPut, "/applications/{id}/status", h.UpdateApplicationStatus},

		{http.MethodPost, "/applications/{id}/negotiations", h.CreateNegotiation},
		{http.MethodGet, "/applications/{id}/negotiations", h.ListNegotiations},
		{http.MethodPut, "/applications/{id}/negotiations/{negotiationId}/response", h.RespondNegotiation},

		{http.MethodPut, "/professionals/me", h.UpsertProfile},
		{http.MethodGet, "/professionals/me", h.GetProfile},
	}
}

// RegisterRoutes mounts the route table on the given router.
func (h *ServiceHandler) RegisterRoutes(r chi.Router) {
	for _, rt := range h.routes() {
		r.MethodFunc(rt.method, rt.pattern, rt.handler)
	}
}

func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
