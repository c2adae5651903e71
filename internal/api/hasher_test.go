package api

import (
	"errors"
	"testing"
)

type stubHasher struct {
	digest   string
	err      error
	verified bool

	gotPlaintext string
	gotDigest    string
}

func (s *stubHasher) Hash(plaintext string) (string, error) {
	s.gotPlaintext = plaintext
	return s.digest, s.err
}

func (s *stubHasher) Verify(plaintext, digest string) bool {
	s.gotPlaintext = plaintext
	s.gotDigest = digest
	return s.verified
}

func TestTimedHasher_HashDelegates(t *testing.T) {
	inner := &stubHasher{digest: "$2a$10$digest"}
	h := timedHasher{inner: inner}

	digest, err := h.Hash("Pizza123!")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest != "$2a$10$digest" || inner.gotPlaintext != "Pizza123!" {
		t.Fatalf("delegation broken: digest=%q plaintext=%q", digest, inner.gotPlaintext)
	}
}

func TestTimedHasher_HashError(t *testing.T) {
	wantErr := errors.New("cost out of range")
	h := timedHasher{inner: &stubHasher{err: wantErr}}

	if _, err := h.Hash("Pizza123!"); !errors.Is(err, wantErr) {
		t.Fatalf("expected inner error, got %v", err)
	}
}

func TestTimedHasher_VerifyDelegates(t *testing.T) {
	inner := &stubHasher{verified: true}
	h := timedHasher{inner: inner}

	if !h.Verify("Pizza123!", "$2a$10$digest") {
		t.Fatalf("expected verify to pass through")
	}
	if inner.gotPlaintext != "Pizza123!" || inner.gotDigest != "$2a$10$digest" {
		t.Fatalf("delegation broken: %+v", inner)
	}
}
