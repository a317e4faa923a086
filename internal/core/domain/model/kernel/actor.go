package kernel

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Role is the authorization level resolved by the auth middleware.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleCustomer Role = "customer"
)

// ParseRole maps a configured role name onto a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleOperator, RoleCustomer:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is the caller on whose behalf an operation runs.
type Actor struct {
	id   string
	role Role
}

func NewActor(id string, role Role) (Actor, error) {
	if strings.TrimSpace(id) == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor id")
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() string {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// IsElevated reports whether the actor may mutate shipments or read the operations views.
func (a Actor) IsElevated() bool {
	return a.role == RoleAdmin || a.role == RoleOperator
}
