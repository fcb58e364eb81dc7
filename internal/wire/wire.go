// Package wire provides dependency injection for splitlog.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	cliadapter "github.com/example/splitlog/internal/adapters/cli"
	"github.com/example/splitlog/internal/adapters/filesystem"
	"github.com/example/splitlog/internal/adapters/persistence"
	"github.com/example/splitlog/internal/adapters/sqlite"
	"github.com/example/splitlog/internal/app"
	"github.com/example/splitlog/internal/config"
	"github.com/example/splitlog/internal/db"
	"github.com/example/splitlog/internal/logging"
	"github.com/example/splitlog/internal/ports/primary"
	"github.com/example/splitlog/internal/ports/secondary"
)

var (
	trackerService primary.TrackerService
	workoutService primary.WorkoutService
	store          secondary.KeyValueStore
	logWriter      io.Writer
	initErr        error
	once           sync.Once
)

// Init loads configuration and state. Safe to call more than once; the
// first error is returned on every call.
func Init() error {
	once.Do(initServices)
	return initErr
}

// TrackerService returns the singleton TrackerService instance.
func TrackerService() primary.TrackerService {
	once.Do(initServices)
	return trackerService
}

// WorkoutService returns the singleton WorkoutService instance.
func WorkoutService() primary.WorkoutService {
	once.Do(initServices)
	return workoutService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	home, err := config.Home()
	if err != nil {
		initErr = err
		return
	}
	cfg, err := config.LoadConfig(home)
	if err != nil {
		initErr = err
		return
	}

	logWriter = logging.Setup(logging.SetupParams{
		LogFile:     cfg.LogFile,
		LogToStderr: cfg.LogToStderr,
		LogLevel:    cfg.LogLevel,
	})
	if cfg.NoColor {
		color.NoColor = true
	}

	store, err = openStore(cfg)
	if err != nil {
		initErr = err
		return
	}
	log.WithFields(log.Fields{"backend": cfg.Backend, "data_dir": cfg.DataDir}).Debug("storage opened")

	// Create repository adapters (secondary ports)
	repo := persistence.NewStateRepository(store)
	programs := filesystem.NewProgramLoader()

	state, err := app.LoadState(context.Background(), repo)
	if err != nil {
		initErr = err
		return
	}
	cache := app.NewViewCache(cfg.CacheSizeMB)

	// Create services (primary ports implementation). Both share one state.
	trackerService = app.NewTrackerService(state, repo, cache, time.Now)
	workoutService = app.NewWorkoutService(state, repo, programs, cache, time.Now)
}

func openStore(cfg *config.Config) (secondary.KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		return filesystem.NewKVStore(cfg.DataDir)
	case config.BackendSQLite:
		database, err := db.Open(db.Path(cfg.DataDir))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return sqlite.NewKVStore(database), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Close releases storage and the log file.
func Close() error {
	var err error
	if store != nil {
		err = multierr.Append(err, store.Close())
	}
	if logWriter != nil {
		err = multierr.Append(err, logging.Close(logWriter))
	}
	return err
}

// TrackerAdapter returns a new TrackerAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func TrackerAdapter() *cliadapter.TrackerAdapter {
	return TrackerAdapterWithOutput(os.Stdout)
}

// TrackerAdapterWithOutput returns a new TrackerAdapter writing to the given output.
func TrackerAdapterWithOutput(out io.Writer) *cliadapter.TrackerAdapter {
	once.Do(initServices)
	return cliadapter.NewTrackerAdapter(trackerService, out)
}

// WorkoutAdapter returns a new WorkoutAdapter writing to stdout.
func WorkoutAdapter() *cliadapter.WorkoutAdapter {
	return WorkoutAdapterWithOutput(os.Stdout)
}

// WorkoutAdapterWithOutput returns a new WorkoutAdapter writing to the given output.
func WorkoutAdapterWithOutput(out io.Writer) *cliadapter.WorkoutAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkoutAdapter(workoutService, out)
}
