package api

import (
	"context"
	"net/http"

	"vetcare-web/internal/core/domain"
)

// ContactAPI calls the /contact endpoint
type ContactAPI struct {
	client *Client
}

// NewContactAPI creates the contact endpoint on top of client
func NewContactAPI(client *Client) *ContactAPI {
	return &ContactAPI{client: client}
}

type contactResponse struct {
	Message string `json:"message"`
}

// Send posts a contact form and returns the backend's confirmation message
func (a *ContactAPI) Send(ctx context.Context, msg domain.ContactMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}
	var resp contactResponse
	if err := a.client.Request(ctx, "/contact/", http.MethodPost, msg, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
