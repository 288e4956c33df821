package anim

import (
	"context"
	"fmt"

	"github.com/san-kum/helix/internal/chain"
)

// DefaultStep is the time advance per scheduled display frame. The
// animation is frame-rate-coupled, not wall-clock-coupled: a faster refresh
// plays the motion faster. Known limitation, kept for fidelity.
const DefaultStep = 0.01

// Frame is one generated chain configuration.
type Frame struct {
	Points []chain.Vec3
	Time   float64
	Seq    int
}

// Source supplies the parameter snapshot read once per frame.
// *chain.Store satisfies it.
type Source interface {
	Snapshot() chain.Params
}

// Observer receives every published frame.
type Observer interface {
	OnFrame(f Frame)
}

// Driver owns the accumulated animation time. It advances time by a fixed
// step once per tick and calls the generator exactly once with the current
// parameter snapshot. Time grows strictly monotonically and is never
// touched by parameter edits.
type Driver struct {
	source    Source
	step      float64
	t         float64
	seq       int
	observers []Observer
}

func New(source Source, step float64) (*Driver, error) {
	if source == nil {
		return nil, fmt.Errorf("anim: nil parameter source")
	}
	if step <= 0 {
		return nil, fmt.Errorf("anim: step must be positive, got %v", step)
	}
	return &Driver{source: source, step: step}, nil
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Tick advances time by one step and generates the next frame. The whole
// parameter set is read once, so edits between frames apply atomically.
func (d *Driver) Tick() Frame {
	d.t += d.step
	d.seq++
	f := Frame{
		Points: chain.Generate(d.source.Snapshot(), d.t),
		Time:   d.t,
		Seq:    d.seq,
	}
	for _, o := range d.observers {
		o.OnFrame(f)
	}
	return f
}

// Time returns the accumulated animation time.
func (d *Driver) Time() float64 { return d.t }

// Seq returns the number of frames generated so far.
func (d *Driver) Seq() int { return d.seq }

// Restart zeroes the accumulator for a fresh animation. Not used for
// parameter edits, which leave time alone.
func (d *Driver) Restart() {
	d.t = 0
	d.seq = 0
}

// Run generates frames back to back without display pacing, for headless
// runs. It returns the last frame produced.
func (d *Driver) Run(ctx context.Context, frames int) (Frame, error) {
	if frames < 1 {
		return Frame{}, fmt.Errorf("anim: frame count must be positive, got %d", frames)
	}

	var last Frame
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		default:
		}
		last = d.Tick()
	}
	return last, nil
}
