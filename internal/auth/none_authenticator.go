package auth

import (
	"net/http"
)

// NoneAuthenticator is used in dev and tests. It trusts identity headers
// and falls back to a fixed clinic user when none are present.
type NoneAuthenticator struct{}

func NewNoneAuthenticator() (*NoneAuthenticator, error) {
	return &NoneAuthenticator{}, nil
}

func (n *NoneAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := User{
			Subject:  "admin",
			ClinicID: "admin",
			Role:     RoleClinic,
		}

		if sub := r.Header.Get("X-Subject"); sub != "" {
			user.Subject = sub
		}
		if org := r.Header.Get("X-Org-Id"); org != "" {
			user.ClinicID = org
		}
		if role := r.Header.Get("X-Role"); role != "" {
			user.Role = Role(role)
			if user.Role == RoleProfessional {
				user.ClinicID = ""
			}
		}

		ctx := NewUserContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
