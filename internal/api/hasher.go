package api

import (
	"time"

	"github.com/pizzastore/auth-system/internal/api/metrics"
	"github.com/pizzastore/auth-system/internal/core/ports"
)

// timedHasher decorates a ports.PasswordHasher with the hash-duration
// histogram. Instrumentation lives here so the core never imports the
// metrics package.
type timedHasher struct {
	inner ports.PasswordHasher
}

func (h timedHasher) Hash(plaintext string) (string, error) {
	start := time.Now()
	digest, err := h.inner.Hash(plaintext)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	return digest, err
}

func (h timedHasher) Verify(plaintext, digest string) bool {
	return h.inner.Verify(plaintext, digest)
}
