package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/handlers/v1alpha1/mappers"
	serviceMappers "github.com/dentamatch/marketplace/internal/service/mappers"
)

// UpsertProfile handles PUT /professionals/me.
func (h *ServiceHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())
	if !user.IsProfessional() {
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error{Error: "forbidden", Message: "only professionals have a stored profile"})
		return
	}

	var body api.ProfessionalUpdate
	if err := h.decodeBody(r, &body); err != nil {
		replyValidationError(w, r, err.Error())
		return
	}

	professional, err := h.professionalSrv.UpsertProfile(r.Context(), mappers.ProfessionalFormApi(user, body))
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.ProfessionalToApi(*professional))
}

// GetProfile handles GET /professionals/me.
func (h *ServiceHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := auth.MustHaveUser(r.Context())

	professional, err := h.professionalSrv.GetProfile(r.Context(), user.Subject)
	if err != nil {
		replyError(w, r, err)
		return
	}

	render.JSON(w, r, serviceMappers.ProfessionalToApi(*professional))
}
