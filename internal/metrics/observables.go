// Package metrics computes polymer observables from generated chain frames.
package metrics

import (
	"math"

	"github.com/san-kum/helix/internal/anim"
	"github.com/san-kum/helix/internal/chain"
)

// Metric accumulates one observable over a sequence of frames. Implemented
// types also satisfy anim.Observer.
type Metric interface {
	Name() string
	Observe(f anim.Frame)
	Value() float64
	Reset()
}

// EndToEnd computes the scalar end-to-end distance for a point sequence.
func EndToEnd(points []chain.Vec3) float64 {
	if len(points) < 2 {
		return 0
	}
	return points[len(points)-1].Sub(points[0]).Length()
}

// RadiusOfGyration computes sqrt(mean squared distance from the centroid).
func RadiusOfGyration(points []chain.Vec3) float64 {
	if len(points) == 0 {
		return 0
	}
	var c chain.Vec3
	for _, p := range points {
		c = c.Add(p)
	}
	c = c.Scale(1 / float64(len(points)))

	sum := 0.0
	for _, p := range points {
		d := p.Sub(c)
		sum += d.Dot(d)
	}
	return math.Sqrt(sum / float64(len(points)))
}

// ContourLength sums the segment lengths.
func ContourLength(points []chain.Vec3) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Sub(points[i-1]).Length()
	}
	return total
}

// Extension tracks the mean end-to-end distance over observed frames.
type Extension struct {
	sum     float64
	samples int
}

func NewExtension() *Extension { return &Extension{} }

func (e *Extension) Name() string { return "end_to_end" }

func (e *Extension) Observe(f anim.Frame) {
	v := EndToEnd(f.Points)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	e.sum += v
	e.samples++
}

func (e *Extension) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *Extension) Reset() {
	e.sum = 0
	e.samples = 0
}

func (e *Extension) OnFrame(f anim.Frame) { e.Observe(f) }

// Compactness tracks the mean radius of gyration over observed frames.
type Compactness struct {
	sum     float64
	samples int
}

func NewCompactness() *Compactness { return &Compactness{} }

func (c *Compactness) Name() string { return "radius_of_gyration" }

func (c *Compactness) Observe(f anim.Frame) {
	v := RadiusOfGyration(f.Points)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	c.sum += v
	c.samples++
}

func (c *Compactness) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *Compactness) Reset() {
	c.sum = 0
	c.samples = 0
}

func (c *Compactness) OnFrame(f anim.Frame) { c.Observe(f) }

// Stretch tracks the maximum contour length seen, a proxy for how far the
// external force has stretched segments beyond unit length.
type Stretch struct {
	max float64
}

func NewStretch() *Stretch { return &Stretch{} }

func (s *Stretch) Name() string { return "max_contour" }

func (s *Stretch) Observe(f anim.Frame) {
	v := ContourLength(f.Points)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	s.max = math.Max(s.max, v)
}

func (s *Stretch) Value() float64 { return s.max }

func (s *Stretch) Reset() { s.max = 0 }

func (s *Stretch) OnFrame(f anim.Frame) { s.Observe(f) }

// Default returns the standard metric set recorded for headless runs.
func Default() []Metric {
	return []Metric{NewExtension(), NewCompactness(), NewStretch()}
}
