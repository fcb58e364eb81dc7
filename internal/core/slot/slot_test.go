package slot

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WorkoutSlot
		wantErr bool
	}{
		{name: "upperA", input: "upperA", want: UpperA},
		{name: "lowerB", input: "lowerB", want: LowerB},
		{name: "wrong case", input: "UpperA", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "push", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSlot) {
					t.Fatalf("expected ErrUnknownSlot, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestOrder(t *testing.T) {
	expected := []WorkoutSlot{UpperA, LowerA, UpperB, LowerB}
	for i, s := range All() {
		if s != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], s)
		}
		if s.Index() != i {
			t.Errorf("%s: expected index %d, got %d", s, i, s.Index())
		}
	}
	if WorkoutSlot("nope").Index() != -1 {
		t.Error("expected -1 for unknown slot")
	}
}

func TestPaired(t *testing.T) {
	pairs := map[WorkoutSlot]WorkoutSlot{
		UpperA: UpperB,
		UpperB: UpperA,
		LowerA: LowerB,
		LowerB: LowerA,
	}
	for s, want := range pairs {
		if got := s.Paired(); got != want {
			t.Errorf("%s: expected pair %s, got %s", s, want, got)
		}
	}
	if WorkoutSlot("nope").Paired() != "" {
		t.Error("expected no pair for unknown slot")
	}
}
