package outbound

import "context"

// AudioStorePort persists synthesized audio and returns a retrievable URL.
// Implementations must be safe for concurrent use.
type AudioStorePort interface {
	Upload(ctx context.Context, content []byte, name string) (string, error)
}
