package service

// PasswordHasher defines the interface for credential-secret hashing and
// verification, keeping the hashing algorithm out of the domain.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret with a stored hash.
	Check(secret, hash string) bool
}
