package backend

import (
	"context"
	"errors"
	"net/http"

	"rental-storefront/internal/pkg/patch"
	"rental-storefront/internal/usecase"
)

var ErrMalformedLogin = errors.New("login response is missing token or user")

func (c *Client) Login(ctx context.Context, email, password string) (usecase.LoginResult, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return usecase.LoginResult{}, err
	}

	token := patch.FirstNonEmpty(resp.Token, resp.AccessToken)
	if token == "" || resp.User == nil || resp.User.ID == "" {
		return usecase.LoginResult{}, &APIError{Status: http.StatusOK, Err: ErrMalformedLogin}
	}

	return usecase.LoginResult{Token: token, User: resp.User.toRecord()}, nil
}

// Register returns the created user when the backend echoes it back, nil otherwise.
func (c *Client) Register(ctx context.Context, in usecase.RegisterInput) (*usecase.UserRecord, error) {
	var resp struct {
		userDTO
		User *userDTO `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", in, &resp); err != nil {
		return nil, err
	}

	switch {
	case resp.User != nil && resp.User.ID != "":
		rec := resp.User.toRecord()
		return &rec, nil
	case resp.ID != "":
		rec := resp.userDTO.toRecord()
		return &rec, nil
	default:
		return nil, nil
	}
}
