package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/example/splitlog/internal/core/slot"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		input   string
		want    slot.WorkoutSlot
		wantErr bool
	}{
		{"upperA", slot.UpperA, false},
		{"upper-b", slot.UpperB, false},
		{"LOWER_A", slot.LowerA, false},
		{"lower b", slot.LowerB, false},
		{"legs", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSlot(tt.input)
			if tt.wantErr {
				if !errors.Is(err, slot.ErrUnknownSlot) {
					t.Errorf("expected ErrUnknownSlot, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseSlot(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	if pos, err := parsePosition("3"); err != nil || pos != 3 {
		t.Errorf("expected 3, got %d (%v)", pos, err)
	}
	for _, bad := range []string{"0", "-1", "two"} {
		if _, err := parsePosition(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2024, 5, 8, 18, 0, 0, 0, time.UTC)

	year, month, err := parseMonth("", now)
	if err != nil || year != 2024 || month != time.May {
		t.Errorf("expected current month, got %d-%d (%v)", year, month, err)
	}

	year, month, err = parseMonth("2023-12", now)
	if err != nil || year != 2023 || month != time.December {
		t.Errorf("expected 2023-12, got %d-%d (%v)", year, month, err)
	}

	if _, _, err := parseMonth("May 2024", now); err == nil {
		t.Error("expected error for bad month")
	}
}
