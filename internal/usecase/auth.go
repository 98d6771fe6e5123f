package usecase

import (
	"context"
	"errors"

	"rentacar/internal/domain/user"
	"rentacar/internal/infra/rentalapi"
	"rentacar/internal/infra/store"
	"rentacar/internal/pkg/clock"
	"rentacar/internal/pkg/errs"
	"rentacar/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrFormInvalid        = errors.New("form validation failed")
	ErrSessionNotFound    = errors.New("session not found")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
	ErrAuthProviderDown   = errors.New("auth provider unavailable")
)

// FormError carries field-level messages out of a rejected login or
// registration form.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string { return "form validation failed" }

func (e *FormError) Unwrap() error { return ErrFormInvalid }

// CredentialVerifier is the external login provider boundary. A nil
// verifier means no provider is configured.
type CredentialVerifier interface {
	Login(ctx context.Context, identifier, password string) (user.User, error)
}

// UserDirectory is the demo account boundary on the rental API.
type UserDirectory interface {
	FindUser(ctx context.Context, email, password string) (user.User, error)
	CreateUser(ctx context.Context, acc rentalapi.NewAccount) (user.User, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, creds user.Credentials) (string, user.User, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	Register(ctx context.Context, form user.Registration) (user.User, error)
	CurrentUser(ctx context.Context, sessionID uuid.UUID) (user.User, error)
	// SessionFromToken resolves a bearer/cookie token into the live session.
	SessionFromToken(ctx context.Context, token string) (store.Session, error)
}

type authUseCaseImpl struct {
	verifier   CredentialVerifier
	directory  UserDirectory
	sessions   store.SessionStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(
	verifier CredentialVerifier,
	directory UserDirectory,
	sessions store.SessionStore,
	jwtService *jwt.Service,
	clk clock.Clock,
) AuthUseCase {
	return &authUseCaseImpl{
		verifier:   verifier,
		directory:  directory,
		sessions:   sessions,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, creds user.Credentials) (string, user.User, error) {
	if fields := creds.Validate(); len(fields) > 0 {
		return "", user.User{}, &FormError{Fields: fields}
	}

	u, err := a.verify(ctx, creds)
	if err != nil {
		return "", user.User{}, err
	}

	sess := store.Session{
		ID:        uuid.New(),
		User:      u,
		CreatedAt: a.clock.Now(),
	}
	if err := a.sessions.PutSession(ctx, sess); err != nil {
		return "", user.User{}, errs.Wrap(err, "failed to persist session")
	}

	token, err := a.jwtService.GenerateToken(sess.ID, u.ID)
	if err != nil {
		return "", user.User{}, errs.Mark(err, ErrTokenGeneration)
	}
	return token, u, nil
}

func (a *authUseCaseImpl) verify(ctx context.Context, creds user.Credentials) (user.User, error) {
	if a.verifier != nil {
		u, err := a.verifier.Login(ctx, creds.Identifier, creds.Password)
		if err == nil {
			return u, nil
		}
		if isUnauthenticated(err) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, errs.Mark(err, ErrAuthProviderDown)
	}

	// No external provider configured: the identifier doubles as the demo
	// account's email.
	u, err := a.directory.FindUser(ctx, creds.Identifier, creds.Password)
	if err != nil {
		if isUnauthenticated(err) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, errs.Mark(err, ErrAuthProviderDown)
	}
	return u, nil
}

func (a *authUseCaseImpl) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return a.sessions.DeleteSession(ctx, sessionID)
}

func (a *authUseCaseImpl) Register(ctx context.Context, form user.Registration) (user.User, error) {
	if fields := form.Validate(); len(fields) > 0 {
		return user.User{}, &FormError{Fields: fields}
	}

	created, err := a.directory.CreateUser(ctx, rentalapi.NewAccount{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		return user.User{}, errs.Mark(err, ErrAuthProviderDown)
	}
	return created, nil
}

func (a *authUseCaseImpl) CurrentUser(ctx context.Context, sessionID uuid.UUID) (user.User, error) {
	sess, err := a.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if isNotFound(err) {
			return user.User{}, ErrSessionNotFound
		}
		return user.User{}, errs.Wrap(err, "failed to load session")
	}
	return sess.User, nil
}

func (a *authUseCaseImpl) SessionFromToken(ctx context.Context, token string) (store.Session, error) {
	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return store.Session{}, errs.Mark(err, ErrTokenValidation)
	}

	sess, err := a.sessions.GetSession(ctx, claims.SessionID)
	if err != nil {
		if isNotFound(err) {
			return store.Session{}, ErrSessionNotFound
		}
		return store.Session{}, errs.Wrap(err, "failed to load session")
	}
	return sess, nil
}
