package core

// TokenProvider is the identity gate's credential half: it issues and
// verifies bearer credentials carrying a user id. Role is always read from
// storage, never from the token, so a promotion takes effect immediately.
type TokenProvider interface {
	// Generate issues a signed token for the given user id
	Generate(userID uint64) (string, error)

	// Parse verifies a token and yields the user id it was issued for.
	// Returns ErrUnauthorized for expired, malformed or mis-signed tokens.
	Parse(token string) (uint64, error)
}
