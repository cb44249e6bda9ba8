//go:generate go run go.uber.org/mock/mockgen -source=auth.go -destination=../mocks/mock_auth_api.go -package=mocks
package api

import (
	"context"
	"net/http"

	"skillspot/domain"
)

type IAuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.CredentialPair, error)
	Register(ctx context.Context, req RegisterRequest) (domain.Identity, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (domain.Identity, error)
	RefreshToken(ctx context.Context, refresh string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
}

// RegisterRequest is the account-creation payload.
type RegisterRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=8,max=72"`
	FirstName string          `json:"first_name" validate:"required"`
	LastName  string          `json:"last_name" validate:"required"`
	UserType  domain.UserType `json:"user_type" validate:"required,oneof=client provider both"`
}

type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) IAuthAPI {
	return &AuthAPI{client: client}
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (domain.CredentialPair, error) {
	body := map[string]string{"email": email, "password": password}
	var pair domain.CredentialPair
	if err := a.client.do(ctx, http.MethodPost, "/auth/login/", body, &pair); err != nil {
		return domain.CredentialPair{}, err
	}
	return pair, nil
}

func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (domain.Identity, error) {
	// The server wraps the created profile: {"message": ..., "user": {...}}.
	var resp struct {
		Message string          `json:"message"`
		User    domain.Identity `json:"user"`
	}
	if err := a.client.do(ctx, http.MethodPost, "/auth/register/", req, &resp); err != nil {
		return domain.Identity{}, err
	}
	return resp.User, nil
}

func (a *AuthAPI) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	return a.client.do(ctx, http.MethodPost, "/auth/logout/", body, nil)
}

func (a *AuthAPI) Me(ctx context.Context) (domain.Identity, error) {
	var identity domain.Identity
	if err := a.client.do(ctx, http.MethodGet, "/auth/users/me/", nil, &identity); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

func (a *AuthAPI) RefreshToken(ctx context.Context, refresh string) (string, error) {
	body := map[string]string{"refresh": refresh}
	var resp struct {
		Access string `json:"access"`
	}
	if err := a.client.do(ctx, http.MethodPost, "/auth/token/refresh/", body, &resp); err != nil {
		return "", err
	}
	return resp.Access, nil
}

func (a *AuthAPI) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return a.client.do(ctx, http.MethodPost, "/auth/reset-password/", body, nil)
}
