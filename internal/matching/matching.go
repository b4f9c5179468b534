// Package matching implements the role-compatibility predicate between a
// job's required role and a professional's stored role.
package matching

import "fmt"

// Role is a professional role in the dental marketplace.
type Role string

const (
	RoleDentist         Role = "dentist"
	RoleHygienist       Role = "hygienist"
	RoleFrontDesk       Role = "front_desk"
	RoleDentalAssistant Role = "dental_assistant"

	// RoleDualFrontDA covers both front desk and dental assistant duties
	// and matches any role in both directions.
	RoleDualFrontDA Role = "dual_role_front_da"
)

// ParseRole converts a raw string to a Role, returning an error for
// unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleDentist, RoleHygienist, RoleFrontDesk, RoleDentalAssistant, RoleDualFrontDA:
		return r, nil
	}
	return "", fmt.Errorf("unknown professional role %q", s)
}

// Compatible reports whether a job requiring jobRole can be staffed by a
// professional holding professionalRole. The predicate is symmetric:
// equal roles always match, and the dual front-desk/dental-assistant role
// acts as a wildcard in both directions.
func Compatible(jobRole, professionalRole Role) bool {
	if jobRole == professionalRole {
		return true
	}
	return jobRole == RoleDualFrontDA || professionalRole == RoleDualFrontDA
}

// CompatibleJobRoles returns every job role a professional holding the
// given role can staff. Used to build listing filters.
func CompatibleJobRoles(professionalRole Role) []string {
	all := []Role{RoleDentist, RoleHygienist, RoleFrontDesk, RoleDentalAssistant, RoleDualFrontDA}
	roles := make([]string, 0, len(all))
	for _, r := range all {
		if Compatible(r, professionalRole) {
			roles = append(roles, string(r))
		}
	}
	return roles
}
