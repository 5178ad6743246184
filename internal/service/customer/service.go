package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"forever-commerce/internal/domain"
	userrepo "forever-commerce/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles account registration and session login flows.
type Service struct {
	repo        userrepo.Repository
	tokens      *tokenManager
	passwordMin int
}

// New creates a Service issuing tokens signed with secret for ttl.
func New(repo userrepo.Repository, secret string, ttl time.Duration) *Service {
	return &Service{
		repo:        repo,
		tokens:      newTokenManager(secret, ttl),
		passwordMin: 8,
	}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsSeller  bool   `json:"isSeller"`
}

// Register creates a local account with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" || email == "" {
		return nil, fmt.Errorf("%w: please fill all the fields", domain.ErrInvalidInput)
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Provider:     "local",
		IsSeller:     in.IsSeller,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: user already exists", domain.ErrInvalidInput)
		}
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials and returns the user plus a signed
// session token. Federated accounts have no password hash and cannot
// log in with a password.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if u.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// VerifyToken resolves a session token to the user id it was issued for.
func (s *Service) VerifyToken(token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// Get returns the account for an authenticated user id.
func (s *Service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// BecomeSeller flips the seller flag on the account.
func (s *Service) BecomeSeller(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.SetSeller(ctx, userID)
}
