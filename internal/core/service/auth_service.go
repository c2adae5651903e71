package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pizzastore/auth-system/internal/core/domain"
	"github.com/pizzastore/auth-system/internal/core/ports"
)

// AuthService implements identification, sign-in, session status, logout and
// customer registration. It routes each sign-in to exactly one credential
// store based on the resolved login type.
type AuthService struct {
	customers ports.CustomerStore
	workers   ports.WorkerStore
	sessions  ports.SessionStore
	hasher    ports.PasswordHasher
	resolver  *LoginTypeResolver
	log       zerolog.Logger
}

func NewAuthService(
	customers ports.CustomerStore,
	workers ports.WorkerStore,
	sessions ports.SessionStore,
	hasher ports.PasswordHasher,
	resolver *LoginTypeResolver,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		customers: customers,
		workers:   workers,
		sessions:  sessions,
		hasher:    hasher,
		resolver:  resolver,
		log:       log,
	}
}

// Identify classifies the email so the client can choose the matching
// sign-in form.
func (s *AuthService) Identify(_ context.Context, email string) (domain.LoginType, error) {
	loginType := s.resolver.Resolve(email)
	s.log.Info().Str("login_type", string(loginType)).Msg("identify")

	if loginType == domain.LoginTypeUnknown {
		return domain.LoginTypeUnknown, domain.ErrInvalidEmail
	}
	return loginType, nil
}

// SignIn authenticates username/password against the store matching kind and
// writes the principal's identity into the session. A kind mismatch fails
// before any store lookup, so a customer-classified identifier can never be
// checked against the worker store or vice versa. Mismatch, missing record
// and wrong password are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, kind domain.LoginType, username, password, sessionID string) (*ports.SanitizedUser, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if resolved := s.resolver.Resolve(username); resolved != kind {
		s.log.Info().
			Str("username", username).
			Str("resolved", string(resolved)).
			Str("requested", string(kind)).
			Msg("sign-in login type mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	switch kind {
	case domain.LoginTypeCustomer:
		return s.signInCustomer(ctx, username, password, sessionID)
	case domain.LoginTypeWorker:
		return s.signInWorker(ctx, username, password, sessionID)
	default:
		return nil, domain.ErrInvalidCredentials
	}
}

func (s *AuthService) signInCustomer(ctx context.Context, username, password, sessionID string) (*ports.SanitizedUser, error) {
	customer, err := s.customers.FindByEmail(ctx, username)
	if errors.Is(err, domain.ErrCustomerNotFound) {
		s.log.Info().Str("username", username).Msg("failed customer sign-in")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, customer.PasswordHash) {
		s.log.Info().Str("username", username).Msg("failed customer sign-in")
		return nil, domain.ErrInvalidCredentials
	}

	data := domain.SessionData{UserID: customer.ID, Role: domain.RoleCustomer, Email: customer.Email}
	if err := s.sessions.Set(ctx, sessionID, data); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info().Str("user_id", customer.ID).Msg("customer signed in")
	return &ports.SanitizedUser{
		ID:        customer.ID,
		Email:     customer.Email,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Role:      domain.RoleCustomer,
	}, nil
}

func (s *AuthService) signInWorker(ctx context.Context, username, password, sessionID string) (*ports.SanitizedUser, error) {
	worker, err := s.workers.FindByEmail(ctx, username)
	if errors.Is(err, domain.ErrWorkerNotFound) {
		s.log.Info().Str("username", username).Msg("failed worker sign-in")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, worker.PasswordHash) {
		s.log.Info().Str("username", username).Msg("failed worker sign-in")
		return nil, domain.ErrInvalidCredentials
	}

	data := domain.SessionData{UserID: worker.ID, Role: worker.Role, Email: worker.Email}
	if err := s.sessions.Set(ctx, sessionID, data); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info().Str("user_id", worker.ID).Str("role", worker.Role).Msg("worker signed in")
	return &ports.SanitizedUser{
		ID:        worker.ID,
		Email:     worker.Email,
		FirstName: worker.FirstName,
		LastName:  worker.LastName,
		Role:      worker.Role,
	}, nil
}

// Status reports whether the session identifies a signed-in principal. An
// absent or expired session is simply "not logged in", never an error.
func (s *AuthService) Status(ctx context.Context, sessionID string) (*ports.SessionStatus, error) {
	if sessionID == "" {
		return &ports.SessionStatus{}, nil
	}

	data, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return &ports.SessionStatus{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &ports.SessionStatus{
		LoggedIn: data.UserID != "",
		UserID:   data.UserID,
		Role:     data.Role,
		Email:    data.Email,
	}, nil
}

// Logout clears the session unconditionally. Logging out an already-absent
// session succeeds.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Invalidate(ctx, sessionID)
}

// Register creates a customer account with its address. The email pre-check
// keeps the 409 cheap; the store's unique index closes the race with a
// concurrent registration.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.SanitizedUser, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidEmail
	}

	s.log.Info().Str("email", input.Email).Msg("register attempt")

	_, err := s.customers.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.Phone,
		PasswordHash: digest,
		Address: &domain.Address{
			Address1: input.Address1,
			Address2: input.Address2,
			City:     input.City,
			State:    input.State,
			Zip:      input.Zip,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.customers.Create(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("customer registered")
	return &ports.SanitizedUser{
		ID:        created.ID,
		Email:     created.Email,
		FirstName: created.FirstName,
		LastName:  created.LastName,
	}, nil
}
