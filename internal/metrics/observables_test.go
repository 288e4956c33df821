package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/helix/internal/anim"
	"github.com/san-kum/helix/internal/chain"
)

func straightChain(n int) []chain.Vec3 {
	points := make([]chain.Vec3, n)
	for i := range points {
		points[i] = chain.Vec3{X: float64(i)}
	}
	return points
}

func TestEndToEnd(t *testing.T) {
	if got := EndToEnd(straightChain(5)); math.Abs(got-4) > 1e-12 {
		t.Errorf("EndToEnd = %v, want 4", got)
	}
	if got := EndToEnd(nil); got != 0 {
		t.Errorf("EndToEnd(nil) = %v, want 0", got)
	}
	if got := EndToEnd(straightChain(1)); got != 0 {
		t.Errorf("EndToEnd(single) = %v, want 0", got)
	}
}

func TestContourLength(t *testing.T) {
	if got := ContourLength(straightChain(5)); math.Abs(got-4) > 1e-12 {
		t.Errorf("ContourLength = %v, want 4", got)
	}
	// a right-angle bend: two segments of length 1
	points := []chain.Vec3{{}, {X: 1}, {X: 1, Y: 1}}
	if got := ContourLength(points); math.Abs(got-2) > 1e-12 {
		t.Errorf("ContourLength = %v, want 2", got)
	}
}

func TestRadiusOfGyration(t *testing.T) {
	// two points a distance 2 apart: centroid in the middle, Rg = 1
	points := []chain.Vec3{{X: -1}, {X: 1}}
	if got := RadiusOfGyration(points); math.Abs(got-1) > 1e-12 {
		t.Errorf("Rg = %v, want 1", got)
	}
	if got := RadiusOfGyration(nil); got != 0 {
		t.Errorf("Rg(nil) = %v, want 0", got)
	}
}

func TestExtensionRunningMean(t *testing.T) {
	m := NewExtension()
	m.Observe(anim.Frame{Points: straightChain(3)}) // end-to-end 2
	m.Observe(anim.Frame{Points: straightChain(5)}) // end-to-end 4
	if got := m.Value(); math.Abs(got-3) > 1e-12 {
		t.Errorf("mean = %v, want 3", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestMetricsIgnoreNonFinite(t *testing.T) {
	bad := []chain.Vec3{{}, {X: math.NaN()}}
	for _, m := range Default() {
		m.Observe(anim.Frame{Points: bad})
		if v := m.Value(); math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s produced non-finite value from degenerate frame", m.Name())
		}
	}
}

func TestStretchTracksMax(t *testing.T) {
	s := NewStretch()
	s.Observe(anim.Frame{Points: straightChain(3)})
	s.Observe(anim.Frame{Points: straightChain(10)})
	s.Observe(anim.Frame{Points: straightChain(2)})
	if got := s.Value(); math.Abs(got-9) > 1e-12 {
		t.Errorf("max contour = %v, want 9", got)
	}
}
