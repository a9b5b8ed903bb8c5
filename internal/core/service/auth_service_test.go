package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.seq++
	created := *user
	created.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[created.Email] = &created
	clone := created
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User)
	for _, u := range r.users {
		for _, id := range ids {
			if u.ID == id {
				clone := *u
				out[id] = &clone
			}
		}
	}
	return out, nil
}

func registerInput(email, username, password, confirm string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:           email,
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	user, err := svc.Register(context.Background(), registerInput("alice@example.com", "alice", "pass123", "pass123"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("new accounts must not be admin")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	cases := []struct{ email, username, password, confirm string }{
		{"", "alice", "pass", "pass"},
		{"alice@example.com", "", "pass", "pass"},
		{"alice@example.com", "alice", "", "pass"},
		{"alice@example.com", "alice", "pass", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), registerInput(tc.email, tc.username, tc.password, tc.confirm)); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user should have been created, have %d", len(repo.users))
	}
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("alice@example.com", "alice", "pass", "other")); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("mismatched registration must not create a user")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("bob@example.com", "bob", "pass", "pass")); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("bob@example.com", "bobby", "pass2", "pass2")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate registration must not create a record, have %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("carol@example.com", "carol", "s3cret", "s3cret")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("dave@example.com", "dave", "goodpass", "goodpass")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), "ghost@example.com", "goodpass")
	_, wrongErr := svc.Login(context.Background(), "dave@example.com", "badpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
}
