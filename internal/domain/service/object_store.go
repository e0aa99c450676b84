package service

import "context"

// ObjectStore keeps uploaded artwork and pictures.
type ObjectStore interface {
	// Put stores data under key and returns the key.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Get reads the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
