package ports

import "context"

// SecretProvider fetches the shared JWT signing secret from secret storage.
// It is called exactly once per process, at warm-context construction; the
// value is cached for the process lifetime.
type SecretProvider interface {
	Fetch(ctx context.Context, secretRef string) (string, error)
}
