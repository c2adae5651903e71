package service

import (
	"strings"

	"github.com/pizzastore/auth-system/internal/core/domain"
)

// LoginTypeResolver classifies a login identifier by its email domain. It
// only routes; it never authenticates. Pure function of its input, safe to
// call without any authentication context.
type LoginTypeResolver struct {
	companyDomain string
}

// NewLoginTypeResolver creates a resolver for the given company email domain
// (e.g. "pizzastore.com"). The comparison is case-insensitive.
func NewLoginTypeResolver(companyDomain string) *LoginTypeResolver {
	return &LoginTypeResolver{companyDomain: strings.ToLower(companyDomain)}
}

// Resolve returns WORKER when the email's domain equals the company domain,
// CUSTOMER for any other domain, and UNKNOWN for empty or non-email input.
//
// The domain is everything after the first '@', so "a@b@pizzastore.com"
// resolves against "b@pizzastore.com" and classifies as CUSTOMER. That quirk
// is part of the routing contract; do not normalise it away without auditing
// both credential stores.
func (r *LoginTypeResolver) Resolve(email string) domain.LoginType {
	at := strings.Index(email, "@")
	if email == "" || at < 0 {
		return domain.LoginTypeUnknown
	}

	if strings.ToLower(email[at+1:]) == r.companyDomain {
		return domain.LoginTypeWorker
	}
	return domain.LoginTypeCustomer
}
