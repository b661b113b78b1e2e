package ports

// PasswordHasher hashes and verifies account passwords. Only hashes are ever
// stored; plaintext passwords never reach a repository.
type PasswordHasher interface {
	// Hash returns a self-describing hash of password, salt included.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
