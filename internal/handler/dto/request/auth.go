package request

import (
	"rental-storefront/internal/usecase"

	"github.com/jinzhu/copier"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Surname  string `json:"surname" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
	Address  string `json:"address" binding:"omitempty,max=255"`
}

func (r *RegisterRequest) ToInput() (usecase.RegisterInput, error) {
	var in usecase.RegisterInput
	if err := copier.Copy(&in, r); err != nil {
		return usecase.RegisterInput{}, err
	}
	return in, nil
}
