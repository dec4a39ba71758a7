// Package session holds the console's admin session: who is signed in and
// which bearer token accompanies API calls.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
)

type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Session is injected wherever the console needs the signed-in admin.
type Session interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Admin() *Admin
	IsAuthenticated() bool
	Token() string
}

// StubAdmin is the identity every stub session signs in as.
var StubAdmin = Admin{
	ID:    "1",
	Email: "admin@example.com",
	Name:  "Admin User",
	Role:  RoleSuperAdmin,
}

// Stub always authenticates StubAdmin. Credentials are ignored, but the token
// lifecycle is real so the rest of the console runs unchanged against a
// backend that checks tokens.
type Stub struct {
	issuer *Issuer
	store  TokenStore
	log    *slog.Logger

	mu    sync.RWMutex
	admin *Admin
	token string
}

var _ Session = (*Stub)(nil)

func NewStub(issuer *Issuer, store TokenStore, log *slog.Logger) *Stub {
	if log == nil {
		log = slog.Default()
	}
	return &Stub{issuer: issuer, store: store, log: log}
}

// Init restores the stored token, issuing a fresh one when it is missing or
// no longer valid.
func (s *Stub) Init(ctx context.Context) error {
	tok, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, ErrTokenNotFound):
	case err != nil:
		return fmt.Errorf("load token: %w", err)
	default:
		admin, perr := s.issuer.Parse(tok)
		if perr == nil {
			s.set(admin, tok)
			return nil
		}
		s.log.Info("stored session token rejected, reissuing", "error", perr)
	}
	return s.issue(ctx)
}

func (s *Stub) Login(ctx context.Context, _, _ string) error {
	return s.issue(ctx)
}

func (s *Stub) Logout(ctx context.Context) error {
	s.set(nil, "")
	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (s *Stub) Admin() *Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == nil {
		return nil
	}
	a := *s.admin
	return &a
}

func (s *Stub) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin != nil
}

func (s *Stub) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Stub) issue(ctx context.Context) error {
	admin := StubAdmin
	tok, err := s.issuer.Issue(admin)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	if err := s.store.Save(ctx, tok, s.issuer.TTL()); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	s.set(&admin, tok)
	s.log.Info("admin session started", "admin_id", admin.ID, "role", admin.Role)
	return nil
}

func (s *Stub) set(admin *Admin, tok string) {
	s.mu.Lock()
	s.admin = admin
	s.token = tok
	s.mu.Unlock()
}
