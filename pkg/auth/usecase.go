package auth

import (
	"context"
	"errors"
	"fmt"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenIssuer) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

// Register validates input, stores a new user and issues a token for it.
// Validation runs before any I/O, in a fixed order, each failure carrying
// its own reason.
func (s *authService) Register(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return AuthResult{}, err
	}
	if err := validatePassword(password); err != nil {
		return AuthResult{}, err
	}

	// Fail fast on an existing account. The unique index remains the real
	// guarantee: concurrent registrations race past this check and one of
	// them gets ErrUserAlreadyExists from Create.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return AuthResult{}, ErrUserAlreadyExists
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}
	token, err := s.tokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token. "No such account" and
// "wrong password" are indistinguishable to the caller: same error, and the
// unknown-email path still runs a bcrypt comparison against a dummy hash so
// the two take comparable work.
func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return AuthResult{}, err
	}
	if password == "" {
		return AuthResult{}, invalid("password is required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			CheckPassword(dummyHash, password)
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if !CheckPassword(user.PasswordHash, password) {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{User: user, Token: token}, nil
}
