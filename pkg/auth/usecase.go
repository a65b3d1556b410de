package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthUseCase describes the sample login flow. Any password is accepted;
// there is no real authorization policy behind this endpoint.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(tokens TokenGenerator) AuthUseCase {
	return &authService{tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	// Demo-only: the password is not verified against anything.
	user := User{
		ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(email)),
		Email: email,
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}
