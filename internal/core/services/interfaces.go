package services

import (
	"context"
	"time"

	"vetcare-web/internal/core/domain"
)

// SessionStore persists the token and cached profile of one browser.
// Token and User never fail: unreadable data reads as absent.
type SessionStore interface {
	SaveToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, bool)
	SaveUser(ctx context.Context, user domain.Profile) error
	User(ctx context.Context) (domain.Profile, bool)
	Clear(ctx context.Context) error
}

// AuthGateway is the backend's /auth surface
type AuthGateway interface {
	Verify(ctx context.Context) (domain.VerifyResult, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error)
	RegisterTutor(ctx context.Context, reg domain.TutorRegistration) (domain.AuthResult, error)
	RegisterClinica(ctx context.Context, reg domain.ClinicaRegistration) (domain.AuthResult, error)
	Logout(ctx context.Context) error
}

// AnimalsGateway is the backend's /animals surface
type AnimalsGateway interface {
	List(ctx context.Context) ([]domain.Animal, error)
	Create(ctx context.Context, animal domain.Animal) (*domain.Animal, error)
	Get(ctx context.Context, id string) (*domain.Animal, error)
	Update(ctx context.Context, id string, animal domain.Animal) (*domain.Animal, error)
	Search(ctx context.Context, query string) ([]domain.Animal, error)
}

// AppointmentsGateway is the backend's /appointments surface
type AppointmentsGateway interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	Create(ctx context.Context, req domain.NewAppointment) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, update domain.StatusUpdate) error
	Cancel(ctx context.Context, id string) error
	AvailableTimes(ctx context.Context, emailClinica, date string) (domain.AvailableTimes, error)
}

// ContactGateway is the backend's /contact surface
type ContactGateway interface {
	Send(ctx context.Context, msg domain.ContactMessage) (string, error)
}

// StalePurger deletes persisted session entries not written since cutoff
type StalePurger interface {
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}
