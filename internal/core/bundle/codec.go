// Package bundle decodes and validates the persisted JSON blobs and the
// export/import document. Decoding fails fast: missing keys or unknown
// workouts are errors, never silently replaced with defaults.
package bundle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/core/week"
	"github.com/example/splitlog/internal/models"
)

var (
	// ErrMalformedPersistedState is returned when a stored blob is corrupt or incomplete.
	ErrMalformedPersistedState = errors.New("malformed persisted state")
	// ErrInvalidImportFormat is returned when an import document matches no known shape.
	ErrInvalidImportFormat = errors.New("invalid import format")
)

// Import formats.
const (
	FormatBundle = "bundle"
	FormatLegacy = "legacy"
)

var completionKeys = []string{"upperA", "lowerA", "upperB", "lowerB", "weekStart"}

func malformed(key, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedPersistedState, key, fmt.Sprintf(format, args...))
}

func object(raw []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("expected a JSON object, got null")
	}
	return obj, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// DecodeWorkoutData parses the four day lists. Every day key must be
// present and hold an array.
func DecodeWorkoutData(raw []byte) (models.WorkoutData, error) {
	obj, err := object(raw)
	if err != nil {
		return models.WorkoutData{}, malformed(models.KeyWorkoutData, "%v", err)
	}
	data := models.NewWorkoutData()
	for _, s := range slot.All() {
		v, ok := obj[string(s)]
		if !ok || isNull(v) {
			return models.WorkoutData{}, malformed(models.KeyWorkoutData, "missing %s", s)
		}
		var list []models.Exercise
		if err := json.Unmarshal(v, &list); err != nil {
			return models.WorkoutData{}, malformed(models.KeyWorkoutData, "%s: %v", s, err)
		}
		if list != nil {
			*data.Day(s) = list
		}
	}
	return data, nil
}

// DecodeCompletionData parses the weekly completion state. All four slot
// keys and weekStart must be present; slot values may be null. weekStart
// must be a Monday at midnight.
func DecodeCompletionData(raw []byte) (models.CompletionData, error) {
	obj, err := object(raw)
	if err != nil {
		return models.CompletionData{}, malformed(models.KeyCompletionData, "%v", err)
	}
	for _, k := range completionKeys {
		if _, ok := obj[k]; !ok {
			return models.CompletionData{}, malformed(models.KeyCompletionData, "missing %s", k)
		}
	}
	if isNull(obj["weekStart"]) {
		return models.CompletionData{}, malformed(models.KeyCompletionData, "weekStart is null")
	}

	var cd models.CompletionData
	if err := json.Unmarshal(raw, &cd); err != nil {
		return models.CompletionData{}, malformed(models.KeyCompletionData, "%v", err)
	}
	if !isWeekStart(cd.WeekStart) {
		return models.CompletionData{}, malformed(models.KeyCompletionData,
			"weekStart %s is not a Monday midnight", cd.WeekStart.Format(time.RFC3339))
	}
	return cd, nil
}

// isWeekStart accepts Monday midnight in the recorded offset or in the
// local zone, so UTC timestamps written elsewhere still load.
func isWeekStart(t time.Time) bool {
	if week.MondayOf(t).Equal(t) {
		return true
	}
	local := t.In(time.Local)
	return week.MondayOf(local).Equal(local)
}

// DecodeHistory parses the history list. Every entry needs a date and a
// known workout.
func DecodeHistory(raw []byte) ([]models.HistoryRecord, error) {
	if isNull(raw) {
		return nil, malformed(models.KeyWorkoutHistory, "expected an array, got null")
	}
	var records []models.HistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, malformed(models.KeyWorkoutHistory, "%v", err)
	}
	for i, r := range records {
		if r.Date.IsZero() {
			return nil, malformed(models.KeyWorkoutHistory, "entry %d has no date", i)
		}
		if !slot.WorkoutSlot(r.Workout).Valid() {
			return nil, malformed(models.KeyWorkoutHistory, "entry %d: unknown workout %q", i, r.Workout)
		}
	}
	if records == nil {
		records = []models.HistoryRecord{}
	}
	return records, nil
}

// Encode marshals one of the persisted blobs.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// EncodeBundle returns the export document, indented for humans.
func EncodeBundle(b *models.Bundle) ([]byte, error) {
	out := *b
	out.WorkoutData = b.WorkoutData.Clone()
	if out.WorkoutHistory == nil {
		out.WorkoutHistory = []models.HistoryRecord{}
	}
	return json.MarshalIndent(out, "", "  ")
}

// Imported is the result of DecodeImport.
type Imported struct {
	Format string
	Bundle models.Bundle
}

// DecodeImport detects the document shape. A document with a workoutData
// key is a bundle and must carry all three parts; a document with the four
// day keys is the legacy format and only fills WorkoutData. Everything is
// validated before the caller replaces any state.
func DecodeImport(raw []byte) (*Imported, error) {
	obj, err := object(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: not a JSON object: %v", ErrInvalidImportFormat, err)
	}

	if _, ok := obj[models.KeyWorkoutData]; ok {
		return decodeBundle(obj)
	}

	for _, s := range slot.All() {
		if _, ok := obj[string(s)]; !ok {
			return nil, fmt.Errorf("%w: expected %s or the four workout days", ErrInvalidImportFormat, models.KeyWorkoutData)
		}
	}
	data, err := DecodeWorkoutData(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportFormat, err)
	}
	return &Imported{Format: FormatLegacy, Bundle: models.Bundle{WorkoutData: data}}, nil
}

func decodeBundle(obj map[string]json.RawMessage) (*Imported, error) {
	for _, k := range []string{models.KeyWorkoutData, models.KeyCompletionData, models.KeyWorkoutHistory} {
		if _, ok := obj[k]; !ok {
			return nil, fmt.Errorf("%w: bundle is missing %s", ErrInvalidImportFormat, k)
		}
	}

	data, err := DecodeWorkoutData(obj[models.KeyWorkoutData])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportFormat, err)
	}
	cd, err := DecodeCompletionData(obj[models.KeyCompletionData])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportFormat, err)
	}
	hist, err := DecodeHistory(obj[models.KeyWorkoutHistory])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportFormat, err)
	}

	return &Imported{
		Format: FormatBundle,
		Bundle: models.Bundle{WorkoutData: data, CompletionData: cd, WorkoutHistory: hist},
	}, nil
}
