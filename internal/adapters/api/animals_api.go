package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"vetcare-web/internal/core/domain"
)

// AnimalsAPI calls the /animals endpoints
type AnimalsAPI struct {
	client *Client
}

// NewAnimalsAPI creates the animal endpoints on top of client
func NewAnimalsAPI(client *Client) *AnimalsAPI {
	return &AnimalsAPI{client: client}
}

type animalsResponse struct {
	Animals []domain.Animal `json:"animals"`
}

type animalResponse struct {
	Animal domain.Animal `json:"animal"`
}

// List returns the animals visible to the logged-in user
func (a *AnimalsAPI) List(ctx context.Context) ([]domain.Animal, error) {
	var resp animalsResponse
	if err := a.client.Request(ctx, "/animals/", http.MethodGet, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Animals, nil
}

// Create registers a new animal for the logged-in tutor
func (a *AnimalsAPI) Create(ctx context.Context, animal domain.Animal) (*domain.Animal, error) {
	if err := animal.Validate(); err != nil {
		return nil, err
	}
	var resp animalResponse
	if err := a.client.Request(ctx, "/animals/", http.MethodPost, animal, &resp); err != nil {
		return nil, err
	}
	return &resp.Animal, nil
}

// Get returns one animal; public, used by the QR code profile page
func (a *AnimalsAPI) Get(ctx context.Context, id string) (*domain.Animal, error) {
	var resp animalResponse
	if err := a.client.Request(ctx, "/animals/"+url.PathEscape(id), http.MethodGet, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Animal, nil
}

// Update replaces an animal's editable fields
func (a *AnimalsAPI) Update(ctx context.Context, id string, animal domain.Animal) (*domain.Animal, error) {
	if err := animal.Validate(); err != nil {
		return nil, err
	}
	var resp animalResponse
	if err := a.client.Request(ctx, "/animals/"+url.PathEscape(id), http.MethodPut, animal, &resp); err != nil {
		return nil, err
	}
	return &resp.Animal, nil
}

// Search finds animals by animal name, tutor name or id
func (a *AnimalsAPI) Search(ctx context.Context, query string) ([]domain.Animal, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("Parâmetro de busca é obrigatório")
	}
	var resp animalsResponse
	if err := a.client.Request(ctx, "/animals/search?q="+url.QueryEscape(query), http.MethodGet, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Animals, nil
}
