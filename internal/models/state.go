package models

import "time"

// Storage keys for the three persisted blobs.
const (
	KeyWorkoutData    = "workoutData"
	KeyCompletionData = "completionData"
	KeyWorkoutHistory = "workoutHistory"
)

// CompletionData is the persisted weekly completion state.
// A nil timestamp means the slot is not completed this week.
type CompletionData struct {
	UpperA    *time.Time `json:"upperA"`
	LowerA    *time.Time `json:"lowerA"`
	UpperB    *time.Time `json:"upperB"`
	LowerB    *time.Time `json:"lowerB"`
	WeekStart time.Time  `json:"weekStart"`
}

// HistoryRecord is one persisted history entry.
type HistoryRecord struct {
	Date    time.Time `json:"date"`
	Workout string    `json:"workout"`
}

// Bundle is the export/import document.
type Bundle struct {
	WorkoutData    WorkoutData     `json:"workoutData"`
	CompletionData CompletionData  `json:"completionData"`
	WorkoutHistory []HistoryRecord `json:"workoutHistory"`
}
