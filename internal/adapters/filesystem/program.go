package filesystem

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/splitlog/internal/core/exercise"
	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/models"
	"github.com/example/splitlog/internal/ports/secondary"
)

// programFile is the YAML layout of a training program:
//
//	days:
//	  upperA:
//	    - name: Bench press
//	      sets: 3
//	      reps: 8-10
type programFile struct {
	Days map[string][]models.Exercise `yaml:"days"`
}

// ProgramLoader implements secondary.ProgramLoader for YAML files.
type ProgramLoader struct{}

// NewProgramLoader creates a new YAML program loader.
func NewProgramLoader() *ProgramLoader {
	return &ProgramLoader{}
}

// Load parses the program at path. Only the days present in the file are
// returned.
func (l *ProgramLoader) Load(ctx context.Context, path string) (map[slot.WorkoutSlot][]models.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}
	return ParseProgram(raw)
}

// ParseProgram decodes a YAML program document.
func ParseProgram(raw []byte) (map[slot.WorkoutSlot][]models.Exercise, error) {
	var doc programFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse program: %w", err)
	}
	if len(doc.Days) == 0 {
		return nil, fmt.Errorf("program defines no days")
	}

	out := make(map[slot.WorkoutSlot][]models.Exercise, len(doc.Days))
	for key, list := range doc.Days {
		s, err := slot.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("program: %w", err)
		}

		day := make([]models.Exercise, 0, len(list))
		for i, e := range list {
			if guard := exercise.CanSaveExercise(e.Name); !guard.Allowed {
				return nil, fmt.Errorf("program %s #%d: %w", s, i+1, guard.Error())
			}
			e.Name = strings.TrimSpace(e.Name)
			if e.GoToFailure == "" {
				e.GoToFailure = models.FailureNo
			}
			day = append(day, e)
		}
		out[s] = day
	}
	return out, nil
}

// Ensure ProgramLoader implements the interface
var _ secondary.ProgramLoader = (*ProgramLoader)(nil)
