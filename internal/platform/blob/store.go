package blob

import "context"

// Store writes binary assets verbatim at exact keys, overwriting any
// existing object at the same key. Keys use forward slashes regardless of
// the backing store.
type Store interface {
	Write(ctx context.Context, key string, data []byte) error
}
