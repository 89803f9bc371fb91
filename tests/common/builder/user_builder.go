//go:build unit || e2e

package builder

import (
	"rental-storefront/internal/domain/user"
)

type UserBuilder struct {
	ID      string
	Email   string
	Role    string
	Name    string
	Surname string
	Address string
	Phone   string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:      "42",
		Email:   "ana@example.com",
		Role:    "CUSTOMER",
		Name:    "Ana",
		Surname: "García",
		Address: "Calle Falsa 123",
		Phone:   "+34 600 000 000",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.ID, email, role, user.Profile{
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Address: u.Address,
		Phone:   u.Phone,
	})
}

// MustBuildDomain panics on invalid input; for fixtures known to be valid.
func (u *UserBuilder) MustBuildDomain() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}

// Fluent builder methods
func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithoutAddress() *UserBuilder {
	u.Address = ""
	return u
}
