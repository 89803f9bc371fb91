package user

import "strings"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// NewRole accepts the spellings the backend has used over time ("user", "admin", "ROLE_ADMIN").
func NewRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "ROLE_")
	switch normalized {
	case "USER", "CUSTOMER":
		return RoleCustomer, nil
	case "ADMIN":
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}
