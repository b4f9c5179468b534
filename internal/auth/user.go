package auth

import (
	"context"
)

type userKeyType struct{}

var userKey userKeyType

// Role is the caller's marketplace role carried in the token claims.
type Role string

const (
	RoleClinic       Role = "clinic"
	RoleProfessional Role = "professional"
)

// User is the resolved identity of the caller.
type User struct {
	Subject  string
	ClinicID string
	Role     Role
}

func (u User) IsClinic() bool       { return u.Role == RoleClinic }
func (u User) IsProfessional() bool { return u.Role == RoleProfessional }

func NewUserContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFromContext(ctx context.Context) (User, bool) {
	val := ctx.Value(userKey)
	if val == nil {
		return User{}, false
	}
	return val.(User), true
}

// MustHaveUser returns the user from the context. It panics when the
// context has no user, which means the authentication middleware was
// not installed.
func MustHaveUser(ctx context.Context) User {
	user, found := UserFromContext(ctx)
	if !found {
		panic("no user found in context")
	}
	return user
}
