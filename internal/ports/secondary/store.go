// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/models"
)

// KeyValueStore is local key-value storage for JSON blobs.
type KeyValueStore interface {
	// Get returns the value for key. ok is false when the key was never written.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put writes one value.
	Put(ctx context.Context, key string, value []byte) error

	// PutMany writes several values; implementations apply them together where they can.
	PutMany(ctx context.Context, values map[string][]byte) error

	// Close releases the underlying storage.
	Close() error
}

// StateRepository defines the secondary port for the three persisted blobs.
type StateRepository interface {
	// Load reads workout data, completion data and history. Missing blobs
	// come back empty; corrupt blobs are an error.
	Load(ctx context.Context) (*models.Bundle, error)

	// Save writes the named blobs (models.Key*) from b. All blobs when keys is empty.
	Save(ctx context.Context, b *models.Bundle, keys ...string) error
}

// ProgramLoader reads a training program document.
type ProgramLoader interface {
	// Load returns the exercise lists defined in the program at path.
	Load(ctx context.Context, path string) (map[slot.WorkoutSlot][]models.Exercise, error)
}
