package core

// PasswordHasher abstracts credential hashing so the domain never sees a
// plaintext-to-hash algorithm choice
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password
	Hash(plain string) (string, error)

	// Compare reports whether plain matches the stored hash
	Compare(hash, plain string) bool
}
