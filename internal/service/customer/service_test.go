package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"forever-commerce/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	created    *domain.User
	createErr  error
	byEmail    *domain.User
	byEmailErr error
	byID       *domain.User
	byIDErr    error
	seller     *domain.User
	sellerErr  error
	lastCreate domain.User
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.lastCreate = u
	return s.created, s.createErr
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return s.byID, s.byIDErr
}

func (s *stubUserRepo) SetSeller(_ context.Context, _ string) (*domain.User, error) {
	return s.seller, s.sellerErr
}

func newTestService(repo *stubUserRepo) *Service {
	return New(repo, "test-secret", time.Hour)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(&stubUserRepo{})
	cases := []RegisterInput{
		{LastName: "L", Email: "a@b.c", Password: "longenough"},
		{FirstName: "F", Email: "a@b.c", Password: "longenough"},
		{FirstName: "F", LastName: "L", Password: "longenough"},
		{FirstName: "F", LastName: "L", Email: "a@b.c", Password: "short"},
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestRegisterHashesAndLowercases(t *testing.T) {
	repo := &stubUserRepo{created: &domain.User{ID: "u1", Email: "ada@example.com"}}
	svc := newTestService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Password:  "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", repo.lastCreate.Email)
	}
	if repo.lastCreate.PasswordHash == "correct horse" || repo.lastCreate.PasswordHash == "" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastCreate.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{createErr: domain.ErrAlreadyExists}
	svc := newTestService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "a@b.c", Password: "longenough",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &stubUserRepo{byEmail: &domain.User{ID: "u1", Email: "a@b.c", PasswordHash: string(hash)}}
	svc := newTestService(repo)

	u, token, err := svc.Login(context.Background(), "a@b.c", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u1" || token == "" {
		t.Fatalf("unexpected login result user=%+v token=%q", u, token)
	}

	userID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if userID != "u1" {
		t.Fatalf("expected subject u1, got %q", userID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	repo := &stubUserRepo{byEmail: &domain.User{ID: "u1", PasswordHash: string(hash)}}
	svc := newTestService(repo)
	_, _, err := svc.Login(context.Background(), "a@b.c", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &stubUserRepo{byEmailErr: domain.ErrNotFound}
	svc := newTestService(repo)
	_, _, err := svc.Login(context.Background(), "a@b.c", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginFederatedAccountHasNoPassword(t *testing.T) {
	repo := &stubUserRepo{byEmail: &domain.User{ID: "u1", Provider: "google"}}
	svc := newTestService(repo)
	_, _, err := svc.Login(context.Background(), "a@b.c", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(&stubUserRepo{})
	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	other := New(&stubUserRepo{}, "other-secret", time.Hour)
	token, err := other.tokens.Issue("u1")
	if err != nil {
		t.Fatal(err)
	}
	svc := newTestService(&stubUserRepo{})
	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc := New(&stubUserRepo{}, "test-secret", -time.Minute)
	token, err := svc.tokens.Issue("u1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
