package ports

// PasswordHasher produces and verifies one-way password digests. Digests are
// self-describing (algorithm parameters and salt embedded), so verification
// needs nothing beyond the digest itself.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed digest is
	// a non-match, never an error surfaced to the caller.
	Verify(plaintext, digest string) bool
}
