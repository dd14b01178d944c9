package api

import (
	"context"
	"net/http"

	"vetcare-web/internal/core/domain"
)

// AuthAPI calls the /auth endpoints
type AuthAPI struct {
	client *Client
}

// NewAuthAPI creates the auth endpoints on top of client
func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type authResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    domain.ProfileJSON `json:"user"`
}

type verifyResponse struct {
	Valid bool               `json:"valid"`
	User  domain.ProfileJSON `json:"user"`
}

func (r authResponse) result() (domain.AuthResult, error) {
	if r.Token == "" || r.User.Profile == nil {
		return domain.AuthResult{}, &domain.Error{Kind: domain.KindNetwork, Message: domain.MsgInvalidResponse}
	}
	return domain.AuthResult{Token: r.Token, User: r.User.Profile}, nil
}

// Verify checks the stored token against the backend
func (a *AuthAPI) Verify(ctx context.Context) (domain.VerifyResult, error) {
	var resp verifyResponse
	if err := a.client.Request(ctx, "/auth/verify", http.MethodGet, nil, &resp); err != nil {
		return domain.VerifyResult{}, err
	}
	return domain.VerifyResult{Valid: resp.Valid, User: resp.User.Profile}, nil
}

// Login authenticates with email, password and user type
func (a *AuthAPI) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	var resp authResponse
	if err := a.client.Request(ctx, "/auth/login", http.MethodPost, creds, &resp); err != nil {
		return domain.AuthResult{}, err
	}
	return resp.result()
}

// RegisterTutor creates a tutor account
func (a *AuthAPI) RegisterTutor(ctx context.Context, reg domain.TutorRegistration) (domain.AuthResult, error) {
	var resp authResponse
	if err := a.client.Request(ctx, "/auth/register/tutor", http.MethodPost, reg, &resp); err != nil {
		return domain.AuthResult{}, err
	}
	return resp.result()
}

// RegisterClinica creates a clinic account
func (a *AuthAPI) RegisterClinica(ctx context.Context, reg domain.ClinicaRegistration) (domain.AuthResult, error) {
	var resp authResponse
	if err := a.client.Request(ctx, "/auth/register/clinica", http.MethodPost, reg, &resp); err != nil {
		return domain.AuthResult{}, err
	}
	return resp.result()
}

// Logout notifies the backend; the answer body is ignored
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.client.Request(ctx, "/auth/logout", http.MethodPost, nil, nil)
}
