package chain

import "fmt"

// Spec describes one editable parameter: its recognized range and the
// increment used by the interactive controls.
type Spec struct {
	Name string
	Min  float64
	Max  float64
	Step float64
}

// Specs lists the editable parameters in display order.
var Specs = []Spec{
	{Name: "length", Min: 50, Max: 200, Step: 1},
	{Name: "persistence", Min: 10, Max: 100, Step: 1},
	{Name: "temperature", Min: 100, Max: 500, Step: 1},
	{Name: "rigidity", Min: 0.1, Max: 10, Step: 0.1},
	{Name: "noise", Min: 0.1, Max: 2, Step: 0.1},
	{Name: "force.x", Min: -10, Max: 10, Step: 0.1},
	{Name: "force.y", Min: -10, Max: 10, Step: 0.1},
	{Name: "force.z", Min: -10, Max: 10, Step: 0.1},
}

// SpecFor returns the Spec for a parameter name.
func SpecFor(name string) (Spec, bool) {
	for _, s := range Specs {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// Store holds the current Params and translates UI-style edits into the
// value read by the next Generate call. It is the validation boundary: an
// edit that would leave the invalid domain is rejected, and in-range edits
// are clamped to the recognized range. The animation loop is strictly
// sequential, so no locking is needed.
type Store struct {
	p Params
}

func NewStore(p Params) (*Store, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Store{p: p}, nil
}

// Snapshot returns the whole parameter set, read once per frame.
func (s *Store) Snapshot() Params { return s.p }

// Get returns a single parameter value by name.
func (s *Store) Get(name string) (float64, error) {
	switch name {
	case "length":
		return float64(s.p.Length), nil
	case "persistence":
		return s.p.PersistenceLength, nil
	case "temperature":
		return s.p.Temperature, nil
	case "rigidity":
		return s.p.BendingRigidity, nil
	case "noise":
		return s.p.NoiseLevel, nil
	case "force.x":
		return s.p.ExternalForce.X, nil
	case "force.y":
		return s.p.ExternalForce.Y, nil
	case "force.z":
		return s.p.ExternalForce.Z, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownParam, name)
}

// Set applies one edit, clamped to the parameter's recognized range. The
// edit is visible to the next Snapshot; the accumulated animation time is
// unaffected.
func (s *Store) Set(name string, value float64) error {
	spec, ok := SpecFor(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	if value < spec.Min {
		value = spec.Min
	}
	if value > spec.Max {
		value = spec.Max
	}

	next := s.p
	switch name {
	case "length":
		next.Length = int(value)
	case "persistence":
		next.PersistenceLength = value
	case "temperature":
		next.Temperature = value
	case "rigidity":
		next.BendingRigidity = value
	case "noise":
		next.NoiseLevel = value
	case "force.x":
		next.ExternalForce.X = value
	case "force.y":
		next.ExternalForce.Y = value
	case "force.z":
		next.ExternalForce.Z = value
	}
	if err := next.Validate(); err != nil {
		return err
	}
	s.p = next
	return nil
}

// Adjust nudges a parameter by n steps of its Spec increment.
func (s *Store) Adjust(name string, steps int) error {
	spec, ok := SpecFor(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	cur, err := s.Get(name)
	if err != nil {
		return err
	}
	return s.Set(name, cur+float64(steps)*spec.Step)
}

// SetForceMode switches the force attenuation behavior.
func (s *Store) SetForceMode(m ForceMode) { s.p.ForceMode = m }
