// Package service defines contracts for domain services implemented by the
// infrastructure layer.
package service

// PasswordHasher defines the contract for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
