package ports

import "context"

// ModelStore fetches the raw serialized model artifact from object storage.
// Like the secret, it is read once per process at warm-context construction.
type ModelStore interface {
	Fetch(ctx context.Context) ([]byte, error)
}
