package store

import (
	"context"
	"fmt"

	"vetcare-web/internal/adapters/persistence/repositories"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/pkg/sealer"

	"github.com/sirupsen/logrus"
)

// Stable storage keys, namespaced by browser id
const (
	TokenKey = "token"
	UserKey  = "user"
)

// BrowserStore is the persistent session storage of one browser:
// an opaque auth token and the cached user profile.
// Reads fail soft: any backend or decoding problem reads as "no session".
type BrowserStore struct {
	repo   repositories.StorageRepository
	id     string
	sealer *sealer.Sealer
	log    *logrus.Entry
}

// New creates the store of browser id. sealer may be nil to store tokens as-is.
func New(repo repositories.StorageRepository, id string, s *sealer.Sealer, log *logrus.Entry) *BrowserStore {
	return &BrowserStore{
		repo:   repo,
		id:     id,
		sealer: s,
		log:    log.WithField("browser", id),
	}
}

func (s *BrowserStore) key(name string) string {
	return s.id + ":" + name
}

// SaveToken persists the auth token
func (s *BrowserStore) SaveToken(ctx context.Context, token string) error {
	value := token
	if s.sealer != nil {
		sealed, err := s.sealer.Seal(token)
		if err != nil {
			return fmt.Errorf("seal token: %w", err)
		}
		value = sealed
	}
	return s.repo.Set(ctx, s.key(TokenKey), value)
}

// Token returns the stored token, if any
func (s *BrowserStore) Token(ctx context.Context) (string, bool) {
	value, ok, err := s.repo.Get(ctx, s.key(TokenKey))
	if err != nil {
		s.log.WithError(err).Warn("read token failed")
		return "", false
	}
	if !ok || value == "" {
		return "", false
	}
	if s.sealer != nil {
		plain, err := s.sealer.Open(value)
		if err != nil {
			s.log.WithError(err).Warn("stored token cannot be opened")
			return "", false
		}
		value = plain
	}
	return value, true
}

// SaveUser persists the user profile as JSON
func (s *BrowserStore) SaveUser(ctx context.Context, user domain.Profile) error {
	data, err := domain.EncodeProfile(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo.Set(ctx, s.key(UserKey), string(data))
}

// User returns the cached profile. Corrupt records read as absent.
func (s *BrowserStore) User(ctx context.Context) (domain.Profile, bool) {
	value, ok, err := s.repo.Get(ctx, s.key(UserKey))
	if err != nil {
		s.log.WithError(err).Warn("read user failed")
		return nil, false
	}
	if !ok || value == "" {
		return nil, false
	}
	user, err := domain.DecodeProfile([]byte(value))
	if err != nil {
		s.log.WithError(err).Warn("stored user is malformed")
		return nil, false
	}
	return user, true
}

// Clear removes both token and user
func (s *BrowserStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, s.key(TokenKey), s.key(UserKey))
}
