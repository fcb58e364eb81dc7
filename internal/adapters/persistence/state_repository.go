// Package persistence contains adapters that implement secondary port interfaces
// on top of a key-value store.
package persistence

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/example/splitlog/internal/core/bundle"
	"github.com/example/splitlog/internal/models"
	"github.com/example/splitlog/internal/ports/secondary"
)

// StateRepository stores the three state blobs under their own keys.
type StateRepository struct {
	store secondary.KeyValueStore
}

// NewStateRepository creates a new StateRepository over store.
func NewStateRepository(store secondary.KeyValueStore) *StateRepository {
	return &StateRepository{store: store}
}

// Load reads all three blobs. A key that was never written yields its empty
// default; a key that holds bad data is an error.
func (r *StateRepository) Load(ctx context.Context) (*models.Bundle, error) {
	b := &models.Bundle{
		WorkoutData:    models.NewWorkoutData(),
		WorkoutHistory: []models.HistoryRecord{},
	}

	raw, ok, err := r.store.Get(ctx, models.KeyWorkoutData)
	if err != nil {
		return nil, err
	}
	if ok {
		if b.WorkoutData, err = bundle.DecodeWorkoutData(raw); err != nil {
			return nil, err
		}
	}

	raw, ok, err = r.store.Get(ctx, models.KeyCompletionData)
	if err != nil {
		return nil, err
	}
	if ok {
		if b.CompletionData, err = bundle.DecodeCompletionData(raw); err != nil {
			return nil, err
		}
	}

	raw, ok, err = r.store.Get(ctx, models.KeyWorkoutHistory)
	if err != nil {
		return nil, err
	}
	if ok {
		if b.WorkoutHistory, err = bundle.DecodeHistory(raw); err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"exercises": b.WorkoutData.Total(),
		"history":   len(b.WorkoutHistory),
	}).Debug("state loaded")

	return b, nil
}

// Save writes the named blobs, or all three when keys is empty.
func (r *StateRepository) Save(ctx context.Context, b *models.Bundle, keys ...string) error {
	if len(keys) == 0 {
		keys = []string{models.KeyWorkoutData, models.KeyCompletionData, models.KeyWorkoutHistory}
	}

	values := make(map[string][]byte, len(keys))
	for _, k := range keys {
		var v any
		switch k {
		case models.KeyWorkoutData:
			data := b.WorkoutData.Clone()
			v = data
		case models.KeyCompletionData:
			v = b.CompletionData
		case models.KeyWorkoutHistory:
			hist := b.WorkoutHistory
			if hist == nil {
				hist = []models.HistoryRecord{}
			}
			v = hist
		default:
			return fmt.Errorf("unknown state key %q", k)
		}

		raw, err := bundle.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", k, err)
		}
		values[k] = raw
	}

	if err := r.store.PutMany(ctx, values); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	log.WithField("keys", keys).Debug("state saved")
	return nil
}

// Ensure StateRepository implements the interface
var _ secondary.StateRepository = (*StateRepository)(nil)
