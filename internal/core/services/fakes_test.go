package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"vetcare-web/internal/core/domain"

	"github.com/sirupsen/logrus"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type memStore struct {
	mu    sync.Mutex
	token string
	user  domain.Profile
}

func (m *memStore) SaveToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memStore) Token(context.Context) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

func (m *memStore) SaveUser(_ context.Context, user domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	return nil
}

func (m *memStore) User(context.Context) (domain.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.user != nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.user = "", nil
	return nil
}

func (m *memStore) empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token == "" && m.user == nil
}

type fakeAuth struct {
	mu    sync.Mutex
	calls map[string]int

	verifyFn  func(ctx context.Context) (domain.VerifyResult, error)
	loginFn   func(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error)
	tutorFn   func(ctx context.Context, reg domain.TutorRegistration) (domain.AuthResult, error)
	clinicaFn func(ctx context.Context, reg domain.ClinicaRegistration) (domain.AuthResult, error)
	logoutFn  func(ctx context.Context) error
}

func (f *fakeAuth) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeAuth) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAuth) Verify(ctx context.Context) (domain.VerifyResult, error) {
	f.count("verify")
	if f.verifyFn == nil {
		return domain.VerifyResult{}, errors.New("unexpected verify")
	}
	return f.verifyFn(ctx)
}

func (f *fakeAuth) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	f.count("login")
	if f.loginFn == nil {
		return domain.AuthResult{}, errors.New("unexpected login")
	}
	return f.loginFn(ctx, creds)
}

func (f *fakeAuth) RegisterTutor(ctx context.Context, reg domain.TutorRegistration) (domain.AuthResult, error) {
	f.count("register_tutor")
	if f.tutorFn == nil {
		return domain.AuthResult{}, errors.New("unexpected register")
	}
	return f.tutorFn(ctx, reg)
}

func (f *fakeAuth) RegisterClinica(ctx context.Context, reg domain.ClinicaRegistration) (domain.AuthResult, error) {
	f.count("register_clinica")
	if f.clinicaFn == nil {
		return domain.AuthResult{}, errors.New("unexpected register")
	}
	return f.clinicaFn(ctx, reg)
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.count("logout")
	if f.logoutFn == nil {
		return nil
	}
	return f.logoutFn(ctx)
}
