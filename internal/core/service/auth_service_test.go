package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pizzastore/auth-system/internal/core/domain"
	"github.com/pizzastore/auth-system/internal/core/ports"
)

type stubCustomerStore struct {
	customers map[string]*domain.Customer
	nextID    int
	findErr   error
	createErr error
}

func newStubCustomerStore() *stubCustomerStore {
	return &stubCustomerStore{customers: make(map[string]*domain.Customer)}
}

func (s *stubCustomerStore) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	c, ok := s.customers[email]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *stubCustomerStore) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, exists := s.customers[customer.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	s.nextID++
	clone := *customer
	clone.ID = fmt.Sprintf("cust-%d", s.nextID)
	s.customers[clone.Email] = &clone
	result := clone
	return &result, nil
}

type stubWorkerStore struct {
	workers map[string]*domain.Worker
	findErr error
}

func newStubWorkerStore() *stubWorkerStore {
	return &stubWorkerStore{workers: make(map[string]*domain.Worker)}
}

func (s *stubWorkerStore) FindByEmail(_ context.Context, email string) (*domain.Worker, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	w, ok := s.workers[email]
	if !ok {
		return nil, domain.ErrWorkerNotFound
	}
	clone := *w
	return &clone, nil
}

type stubSessionStore struct {
	sessions map[string]domain.SessionData
	setErr   error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.SessionData)}
}

func (s *stubSessionStore) Get(_ context.Context, sessionID string) (*domain.SessionData, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &data, nil
}

func (s *stubSessionStore) Set(_ context.Context, sessionID string, data domain.SessionData) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sessions[sessionID] = data
	return nil
}

func (s *stubSessionStore) Invalidate(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type authFixture struct {
	customers *stubCustomerStore
	workers   *stubWorkerStore
	sessions  *stubSessionStore
	hasher    *BcryptHasher
	svc       *AuthService
}

func newAuthFixture() *authFixture {
	customers := newStubCustomerStore()
	workers := newStubWorkerStore()
	sessions := newStubSessionStore()
	hasher := NewBcryptHasher(bcrypt.MinCost)
	resolver := NewLoginTypeResolver("work.com")
	svc := NewAuthService(customers, workers, sessions, hasher, resolver, zerolog.Nop())
	return &authFixture{customers: customers, workers: workers, sessions: sessions, hasher: hasher, svc: svc}
}

func (f *authFixture) seedCustomer(t *testing.T, email, password string) *domain.Customer {
	t.Helper()
	digest, err := f.hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	c := &domain.Customer{
		Email:        email,
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: digest,
	}
	created, err := f.customers.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("seed customer failed: %v", err)
	}
	return created
}

func (f *authFixture) seedWorker(t *testing.T, email, password, role string) *domain.Worker {
	t.Helper()
	digest, err := f.hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	w := &domain.Worker{
		ID:           "wrk-1",
		Email:        email,
		FirstName:    "Walt",
		LastName:     "Smith",
		PasswordHash: digest,
		Role:         role,
	}
	f.workers.workers[email] = w
	return w
}

func TestAuthService_Identify(t *testing.T) {
	f := newAuthFixture()

	got, err := f.svc.Identify(context.Background(), "jane@gmail.com")
	if err != nil || got != domain.LoginTypeCustomer {
		t.Fatalf("Identify(customer email) = %s, %v", got, err)
	}

	got, err = f.svc.Identify(context.Background(), "bob@work.com")
	if err != nil || got != domain.LoginTypeWorker {
		t.Fatalf("Identify(worker email) = %s, %v", got, err)
	}

	if _, err := f.svc.Identify(context.Background(), "not-an-email"); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestAuthService_SignIn_CustomerSuccess(t *testing.T) {
	f := newAuthFixture()
	seeded := f.seedCustomer(t, "jane@gmail.com", "Pizza123!")

	user, err := f.svc.SignIn(context.Background(), domain.LoginTypeCustomer, "jane@gmail.com", "Pizza123!", "sess-1")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if user.ID != seeded.ID || user.Email != "jane@gmail.com" || user.Role != domain.RoleCustomer {
		t.Fatalf("unexpected sanitized user: %+v", user)
	}

	data, ok := f.sessions.sessions["sess-1"]
	if !ok {
		t.Fatalf("session was not written")
	}
	if data.UserID != seeded.ID || data.Role != "Customer" || data.Email != "jane@gmail.com" {
		t.Fatalf("unexpected session data: %+v", data)
	}
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.seedCustomer(t, "jane@gmail.com", "Pizza123!")

	_, err := f.svc.SignIn(context.Background(), domain.LoginTypeCustomer, "jane@gmail.com", "WrongPass!", "sess-1")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(f.sessions.sessions) != 0 {
		t.Fatalf("session written on failed sign-in")
	}
}

// Missing account and wrong password must be indistinguishable.
func TestAuthService_SignIn_UnknownUserSameError(t *testing.T) {
	f := newAuthFixture()
	f.seedCustomer(t, "jane@gmail.com", "Pizza123!")

	_, errMissing := f.svc.SignIn(context.Background(), domain.LoginTypeCustomer, "ghost@gmail.com", "Pizza123!", "s")
	_, errWrongPw := f.svc.SignIn(context.Background(), domain.LoginTypeCustomer, "jane@gmail.com", "nope", "s")

	if !errors.Is(errMissing, domain.ErrInvalidCredentials) || !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", errMissing, errWrongPw)
	}
	if errMissing.Error() != errWrongPw.Error() {
		t.Fatalf("failure modes are distinguishable: %q vs %q", errMissing, errWrongPw)
	}
}

// A customer-classified identifier submitted to the worker flow must fail
// before any store lookup, even when a worker record with that email exists.
func TestAuthService_SignIn_TypeMismatch(t *testing.T) {
	f := newAuthFixture()
	f.seedWorker(t, "jane@gmail.com", "Pizza123!", "Manager")

	_, err := f.svc.SignIn(context.Background(), domain.LoginTypeWorker, "jane@gmail.com", "Pizza123!", "s")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// And the mirror case: a worker email against the customer flow.
	f.seedCustomer(t, "boss@work.com", "Secret99!")
	_, err = f.svc.SignIn(context.Background(), domain.LoginTypeCustomer, "boss@work.com", "Secret99!", "s")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SignIn_WorkerSuccess(t *testing.T) {
	f := newAuthFixture()
	f.seedWorker(t, "boss@work.com", "Secret99!", "Manager")

	user, err := f.svc.SignIn(context.Background(), domain.LoginTypeWorker, "boss@work.com", "Secret99!", "sess-9")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if user.Role != "Manager" {
		t.Fatalf("expected stored role Manager, got %q", user.Role)
	}
	if data := f.sessions.sessions["sess-9"]; data.Role != "Manager" || data.Email != "boss@work.com" {
		t.Fatalf("unexpected session data: %+v", data)
	}
}

func TestAuthService_SignIn_StoreFaultPropagates(t *testing.T) {
	f := newAuthFixture()
	f.customers.findErr = errors.New("mongo: connection reset")

	_, err := f.svc.SignIn(context.Background(), domain.LoginTypeCustomer, "jane@gmail.com", "Pizza123!", "s")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store fault was masked as bad credentials")
	}
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestAuthService_Status(t *testing.T) {
	f := newAuthFixture()

	status, err := f.svc.Status(context.Background(), "")
	if err != nil || status.LoggedIn {
		t.Fatalf("empty session id should be logged out, got %+v, %v", status, err)
	}

	status, err = f.svc.Status(context.Background(), "unknown-id")
	if err != nil || status.LoggedIn {
		t.Fatalf("unknown session should be logged out, got %+v, %v", status, err)
	}

	f.sessions.sessions["sess-1"] = domain.SessionData{UserID: "cust-1", Role: "Customer", Email: "jane@gmail.com"}
	status, err = f.svc.Status(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !status.LoggedIn || status.UserID != "cust-1" || status.Role != "Customer" || status.Email != "jane@gmail.com" {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	f := newAuthFixture()
	f.sessions.sessions["sess-1"] = domain.SessionData{UserID: "cust-1"}

	if err := f.svc.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := f.sessions.sessions["sess-1"]; ok {
		t.Fatalf("session not invalidated")
	}
	if err := f.svc.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("repeated logout should succeed, got %v", err)
	}
	if err := f.svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without a session should succeed, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0100",
		Address1:  "1 Main St",
		City:      "Boston",
		State:     "MA",
		Zip:       "02101",
		Email:     "jane@gmail.com",
		Password:  "Pizza123!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if user.Role != "" {
		t.Fatalf("registration response must not carry a role, got %q", user.Role)
	}

	stored := f.customers.customers["jane@gmail.com"]
	if stored == nil {
		t.Fatalf("customer not persisted")
	}
	if stored.PasswordHash == "Pizza123!" {
		t.Fatalf("password stored in plaintext")
	}
	if !f.hasher.Verify("Pizza123!", stored.PasswordHash) {
		t.Fatalf("stored digest does not verify against the password")
	}
	if stored.Address == nil || stored.Address.Zip != "02101" || stored.Address.Address1 != "1 Main St" {
		t.Fatalf("address not persisted verbatim: %+v", stored.Address)
	}
	if len(f.sessions.sessions) != 0 {
		t.Fatalf("registration must not establish a session")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	f.seedCustomer(t, "taken@gmail.com", "Pizza123!")

	_, err := f.svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "taken@gmail.com",
		Password:  "Another1!",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(f.customers.customers) != 1 {
		t.Fatalf("duplicate registration wrote to the store")
	}
}

func TestAuthService_Register_StoreFaultPropagates(t *testing.T) {
	f := newAuthFixture()
	f.customers.findErr = errors.New("mongo: server selection timeout")

	_, err := f.svc.Register(context.Background(), ports.RegisterInput{Email: "jane@gmail.com", Password: "Pizza123!"})
	if err == nil || errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("store fault must not be masked, got %v", err)
	}
}
