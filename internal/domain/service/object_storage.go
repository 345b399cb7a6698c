package service

import "context"

// ObjectStorage abstracts the blob store holding property image binaries.
// Each Put is independent; the batch upload flow issues them concurrently
// and never requires ordering between calls. Timeouts are the adapter's
// responsibility.
type ObjectStorage interface {
	// Put stores a binary blob under the given key, tagged with the owning
	// property id. Failures are per-object and do not affect other calls.
	Put(ctx context.Context, key string, data []byte, propertyID string) error

	// Delete removes the blob under the given key. Missing keys are ignored.
	Delete(ctx context.Context, key string) error
}
