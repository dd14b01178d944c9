package api

import (
	"context"
	"net/http"
	"net/url"

	"vetcare-web/internal/core/domain"
)

// AppointmentsAPI calls the /appointments endpoints
type AppointmentsAPI struct {
	client *Client
}

// NewAppointmentsAPI creates the appointment endpoints on top of client
func NewAppointmentsAPI(client *Client) *AppointmentsAPI {
	return &AppointmentsAPI{client: client}
}

type appointmentsResponse struct {
	Appointments []domain.Appointment `json:"appointments"`
}

type appointmentResponse struct {
	Appointment domain.Appointment `json:"appointment"`
}

// List returns the appointments of the logged-in tutor or clinic
func (a *AppointmentsAPI) List(ctx context.Context) ([]domain.Appointment, error) {
	var resp appointmentsResponse
	if err := a.client.Request(ctx, "/appointments/", http.MethodGet, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

// Create books a new appointment; the backend starts it as pendente
func (a *AppointmentsAPI) Create(ctx context.Context, req domain.NewAppointment) (*domain.Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp appointmentResponse
	if err := a.client.Request(ctx, "/appointments/", http.MethodPost, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Appointment, nil
}

// UpdateStatus accepts or refuses a pending appointment
func (a *AppointmentsAPI) UpdateStatus(ctx context.Context, id string, update domain.StatusUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}
	return a.client.Request(ctx, "/appointments/"+url.PathEscape(id)+"/status", http.MethodPut, update, nil)
}

// Cancel cancels an appointment
func (a *AppointmentsAPI) Cancel(ctx context.Context, id string) error {
	return a.client.Request(ctx, "/appointments/"+url.PathEscape(id), http.MethodDelete, nil, nil)
}

// AvailableTimes lists free slots of a clinic on a date (YYYY-MM-DD)
func (a *AppointmentsAPI) AvailableTimes(ctx context.Context, emailClinica, date string) (domain.AvailableTimes, error) {
	if emailClinica == "" || date == "" {
		return domain.AvailableTimes{}, domain.NewValidationError("Email da clínica e data são obrigatórios")
	}
	q := url.Values{}
	q.Set("email_clinica", emailClinica)
	q.Set("data", date)

	var resp domain.AvailableTimes
	if err := a.client.Request(ctx, "/appointments/available-times?"+q.Encode(), http.MethodGet, nil, &resp); err != nil {
		return domain.AvailableTimes{}, err
	}
	return resp, nil
}
