package ports

// TokenService issues and validates signed, time-limited identity tokens.
// Tokens are stateless: validity is decided by signature and expiry alone,
// so any instance sharing the signing secret can validate a token it did
// not issue.
type TokenService interface {
	// Issue returns a signed token for the given credentials, or
	// domain.ErrBadCredentials on any mismatch.
	Issue(username, password string) (string, error)

	// Validate verifies signature, algorithm and expiry, returning the
	// token subject or domain.ErrInvalidToken.
	Validate(token string) (string, error)
}
