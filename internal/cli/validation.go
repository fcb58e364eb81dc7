package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/splitlog/internal/core/slot"
)

// parseSlot accepts a workout day in any of the forms people type:
// upperA, upper-a, upper_a, UPPERA.
func parseSlot(arg string) (slot.WorkoutSlot, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(arg))
	for _, s := range slot.All() {
		if strings.ToLower(string(s)) == norm {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: '%s'. Expected one of: upperA, lowerA, upperB, lowerB", slot.ErrUnknownSlot, arg)
}

// parsePosition converts a 1-based exercise position.
func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil || pos < 1 {
		return 0, fmt.Errorf("invalid position '%s'. Use the number shown by 'splitlog exercise list'", arg)
	}
	return pos, nil
}

// parseMonth reads YYYY-MM. An empty value means the month containing now.
func parseMonth(arg string, now time.Time) (int, time.Month, error) {
	if arg == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", arg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month '%s'. Expected format: YYYY-MM", arg)
	}
	return t.Year(), t.Month(), nil
}
