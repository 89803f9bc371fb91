package user

import "strings"

// User is the authenticated account as reported by the backend.
// The storefront never mutates it; a new login replaces it.
type User struct {
	id      string
	name    string
	surname string
	email   Email
	phone   string
	address string
	role    Role
}

// Profile holds the contact fields used to pre-fill forms.
type Profile struct {
	Name    string
	Surname string
	Email   string
	Address string
	Phone   string
}

func NewUser(id string, email Email, role Role, profile Profile) (*User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMissingUserID
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:      id,
		name:    strings.TrimSpace(profile.Name),
		surname: strings.TrimSpace(profile.Surname),
		email:   email,
		phone:   strings.TrimSpace(profile.Phone),
		address: strings.TrimSpace(profile.Address),
		role:    role,
	}, nil
}

func (u *User) ID() string      { return u.id }
func (u *User) Name() string    { return u.name }
func (u *User) Surname() string { return u.surname }
func (u *User) Email() Email    { return u.email }
func (u *User) Phone() string   { return u.phone }
func (u *User) Address() string { return u.address }
func (u *User) Role() Role      { return u.role }

func (u *User) DisplayName() string {
	return strings.TrimSpace(u.name + " " + u.surname)
}

func (u *User) Profile() Profile {
	return Profile{
		Name:    u.name,
		Surname: u.surname,
		Email:   u.email.Value(),
		Address: u.address,
		Phone:   u.phone,
	}
}
