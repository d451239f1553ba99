// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
	"github.com/faraz365/storefront-backend/internal/store"
)

// Service handles account business logic
type Service struct {
	store store.Store
	seq   *store.Sequencer
}

// NewService creates a new user service
func NewService(st store.Store, seq *store.Sequencer) *Service {
	return &Service{store: st, seq: seq}
}

// SignupRequest represents account creation data
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a new account. Email uniqueness is enforced at creation;
// the password is stored exactly as given.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*User, error) {
	var existing User
	err := s.store.FindOne(ctx, store.Users, store.Filter{"email": req.Email}, &existing)
	if err == nil {
		return nil, apperr.New(apperr.Conflict, "Account already exists")
	}
	if !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrUnavailable) {
		return nil, fmt.Errorf("check existing account: %w", err)
	}

	role := req.Role
	if role != RoleAdmin {
		role = RoleUser
	}

	u := User{
		ID:        s.seq.Next(store.Users),
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, store.Users, u); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &u, nil
}

// Login matches credentials by plain equality, mirroring signup's storage.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*User, error) {
	var u User
	err := s.store.FindOne(ctx, store.Users, store.Filter{"email": req.Email, "password": req.Password}, &u)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrUnavailable) {
		return nil, apperr.New(apperr.Unauthorized, "Account not found. Please sign up first.")
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &u, nil
}

// List returns all accounts. Passwords are stripped by serialization.
// A degraded durable read yields an empty list, never volatile data.
func (s *Service) List(ctx context.Context) ([]User, error) {
	var users []User
	err := s.store.Find(ctx, store.Users, store.Filter{}, nil, &users)
	if errors.Is(err, store.ErrUnavailable) {
		return []User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// UpdateRole changes a user's role. Only the role field is touched.
func (s *Service) UpdateRole(ctx context.Context, id int64, role string) (*User, error) {
	if role != RoleAdmin && role != RoleUser {
		return nil, apperr.New(apperr.Validation, "Invalid role")
	}

	matched, err := s.store.Update(ctx, store.Users, store.Filter{"id": id}, store.Filter{"role": role})
	if err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}
	if matched == 0 {
		return nil, apperr.New(apperr.NotFound, "User not found")
	}

	var u User
	if err := s.store.FindOne(ctx, store.Users, store.Filter{"id": id}, &u); err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return &u, nil
}
