package domain

// LoginType classifies a login identifier by its email domain and decides
// which credential store a sign-in attempt is routed to.
type LoginType string

const (
	// LoginTypeWorker means the identifier's domain matches the company domain.
	LoginTypeWorker LoginType = "WORKER"
	// LoginTypeCustomer means the identifier has a non-company domain.
	LoginTypeCustomer LoginType = "CUSTOMER"
	// LoginTypeUnknown means the identifier was empty or not email-shaped.
	LoginTypeUnknown LoginType = "UNKNOWN"
)

// RoleCustomer is the fixed role string written to the session for customers.
// Workers carry whatever role string their record stores (e.g. "Manager").
const RoleCustomer = "Customer"
