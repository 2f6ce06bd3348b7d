package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecosort/backend/internal/auth"
	"github.com/ecosort/backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byID    map[string]model.User
	byEmail map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]model.User{}, byEmail: map[string]string{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.byID[u.ID] = *u
	f.byEmail[u.Email] = u.ID
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f.FindByID(ctx, id)
}

func (f *fakeUserRepo) Update(ctx context.Context, u *model.User) error {
	f.byID[u.ID] = *u
	f.byEmail[u.Email] = u.ID
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeUserRepo) ListTopByPoints(ctx context.Context, limit int) ([]model.User, error) {
	return nil, nil
}

func newAuthFixture(t *testing.T) (*fakeUserRepo, AuthService) {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	users := newFakeUserRepo()
	return users, NewAuthService(users, tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	_, svc := newAuthFixture(t)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "Demo User", "Demo@EcoSort.com", "demo123")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("no token issued")
	}
	if u.Email != "demo@ecosort.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash == "demo123" {
		t.Fatal("password stored in plaintext")
	}

	u2, token2, err := svc.Login(ctx, "demo@ecosort.com", "demo123")
	if err != nil {
		t.Fatal(err)
	}
	if u2.ID != u.ID || token2 == "" {
		t.Fatalf("login mismatch: %q vs %q", u2.ID, u.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, svc := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Demo User", "demo@ecosort.com", "demo123"); err != nil {
		t.Fatal(err)
	}
	_, _, err := svc.Register(ctx, "Other User", "demo@ecosort.com", "other456")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	_, svc := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"short name", "D", "demo@ecosort.com", "demo123"},
		{"bad email", "Demo User", "not-an-email", "demo123"},
		{"short password", "Demo User", "demo@ecosort.com", "12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Register(ctx, tt.userName, tt.email, tt.password); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	_, svc := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Demo User", "demo@ecosort.com", "demo123"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login(ctx, "demo@ecosort.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "ghost@ecosort.com", "demo123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestVerifyTokenRoundtrip(t *testing.T) {
	users, svc := newAuthFixture(t)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "Demo User", "demo@ecosort.com", "demo123")
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.VerifyToken(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID {
		t.Fatalf("verified wrong user: %q vs %q", got.ID, u.ID)
	}

	// Token for a user that no longer exists.
	delete(users.byID, u.ID)
	if _, err := svc.VerifyToken(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.VerifyToken(ctx, "garbage"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
