package chain

import (
	"errors"
	"math"
	"testing"
)

func TestNewStoreRejectsInvalid(t *testing.T) {
	p := DefaultParams()
	p.BendingRigidity = 0
	if _, err := NewStore(p); !errors.Is(err, ErrBendingRigidity) {
		t.Errorf("expected ErrBendingRigidity, got %v", err)
	}
}

func TestStoreSetClamps(t *testing.T) {
	s, err := NewStore(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"temperature", 50, 100},
		{"temperature", 9999, 500},
		{"rigidity", 0, 0.1}, // clamps to range min, never reaches zero
		{"noise", -3, 0.1},
		{"force.x", 25, 10},
		{"force.y", -25, -10},
	}
	for _, tt := range tests {
		if err := s.Set(tt.name, tt.value); err != nil {
			t.Fatalf("Set(%s, %v): %v", tt.name, tt.value, err)
		}
		got, _ := s.Get(tt.name)
		if got != tt.want {
			t.Errorf("Set(%s, %v) = %v, want %v", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestStoreSetLength(t *testing.T) {
	s, _ := NewStore(DefaultParams())
	if err := s.Set("length", 150); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().Length; got != 150 {
		t.Errorf("length = %d, want 150", got)
	}
	// below range clamps to 50
	s.Set("length", 3)
	if got := s.Snapshot().Length; got != 50 {
		t.Errorf("length = %d, want 50", got)
	}
}

func TestStoreUnknownParam(t *testing.T) {
	s, _ := NewStore(DefaultParams())
	if err := s.Set("gravity", 9.81); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
	if _, err := s.Get("gravity"); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestStoreAdjust(t *testing.T) {
	s, _ := NewStore(DefaultParams())
	before, _ := s.Get("rigidity")
	if err := s.Adjust("rigidity", 3); err != nil {
		t.Fatal(err)
	}
	after, _ := s.Get("rigidity")
	if math.Abs(after-(before+0.3)) > 1e-9 {
		t.Errorf("rigidity = %v, want %v", after, before+0.3)
	}

	// stepping far past the top of the range clamps
	if err := s.Adjust("noise", 1000); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Get("noise"); got != 2 {
		t.Errorf("noise = %v, want 2", got)
	}
}

func TestStoreSnapshotIsValue(t *testing.T) {
	s, _ := NewStore(DefaultParams())
	snap := s.Snapshot()
	s.Set("temperature", 450)
	if snap.Temperature == 450 {
		t.Error("snapshot mutated by later edit")
	}
	if s.Snapshot().Temperature != 450 {
		t.Error("edit not visible to next snapshot")
	}
}

func TestSpecFor(t *testing.T) {
	if _, ok := SpecFor("persistence"); !ok {
		t.Error("expected spec for persistence")
	}
	if _, ok := SpecFor("nope"); ok {
		t.Error("unexpected spec for unknown name")
	}
}
