package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/example/splitlog/internal/core/bundle"
	"github.com/example/splitlog/internal/core/completion"
	"github.com/example/splitlog/internal/core/history"
	"github.com/example/splitlog/internal/core/week"
	"github.com/example/splitlog/internal/models"
	"github.com/example/splitlog/internal/ports/secondary"
)

// State is the in-memory copy of everything the tracker persists.
// It is loaded once per process and shared by the services.
type State struct {
	Workouts   models.WorkoutData
	Completion *completion.Tracker
	History    *history.Log
}

// NewState builds state from a decoded bundle.
func NewState(b *models.Bundle) *State {
	st := &State{}
	st.replace(b)
	return st
}

// LoadState reads the persisted blobs through repo.
func LoadState(ctx context.Context, repo secondary.StateRepository) (*State, error) {
	b, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return NewState(b), nil
}

// Bundle returns a deep copy of the state in its persisted shape.
func (s *State) Bundle() *models.Bundle {
	return &models.Bundle{
		WorkoutData:    s.Workouts.Clone(),
		CompletionData: bundle.CompletionData(s.Completion),
		WorkoutHistory: bundle.Records(s.History),
	}
}

func (s *State) replace(b *models.Bundle) {
	s.Workouts = b.WorkoutData.Clone()
	s.Completion = bundle.Tracker(b.CompletionData)
	s.History = bundle.Log(b.WorkoutHistory)
}

// session holds what both services share: the state, where it is
// persisted, the derived-view cache and the clock.
type session struct {
	state *State
	repo  secondary.StateRepository
	cache *ViewCache
	now   func() time.Time
}

func newSession(state *State, repo secondary.StateRepository, cache *ViewCache, now func() time.Time) session {
	if now == nil {
		now = time.Now
	}
	return session{state: state, repo: repo, cache: cache, now: now}
}

// ensureCurrentWeek rolls completion over when a new week has started and
// persists the reset. If the save fails the old week is kept, so the next
// call tries again.
func (s *session) ensureCurrentWeek(ctx context.Context) error {
	now := s.now()
	prev := s.state.Bundle()
	if !s.state.Completion.EnsureCurrentWeek(now) {
		return nil
	}

	if err := s.commit(ctx, prev, models.KeyCompletionData); err != nil {
		return fmt.Errorf("failed to persist week rollover: %w", err)
	}
	log.WithField("week_start", week.MondayOf(now).Format(time.DateOnly)).Info("new training week started")
	return nil
}

// commit persists keys after an in-memory mutation. On failure the state is
// put back to prev so memory and storage stay in step.
func (s *session) commit(ctx context.Context, prev *models.Bundle, keys ...string) error {
	if err := s.repo.Save(ctx, s.state.Bundle(), keys...); err != nil {
		s.state.replace(prev)
		return err
	}
	s.cache.Clear()
	return nil
}
