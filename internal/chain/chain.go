package chain

import "math"

// ForceMode selects how the external force is attenuated along the chain.
type ForceMode int

const (
	// ForceDecay carries the scaled force vector from one segment to the
	// next, so the applied contribution at segment i is
	// externalForce * (1/bendingRigidity)^i. This matches the visual
	// behavior the generator was modeled on.
	ForceDecay ForceMode = iota

	// ForceConstant applies externalForce * (1/bendingRigidity) fresh at
	// every segment.
	ForceConstant
)

func (m ForceMode) String() string {
	if m == ForceConstant {
		return "constant"
	}
	return "decay"
}

// ParseForceMode maps a config/flag string to a ForceMode. Unrecognized
// values fall back to ForceDecay.
func ParseForceMode(s string) ForceMode {
	if s == "constant" {
		return ForceConstant
	}
	return ForceDecay
}

// Params describes one worm-like-chain configuration. The zero value is not
// usable; start from DefaultParams.
type Params struct {
	Length            int
	PersistenceLength float64
	Temperature       float64
	BendingRigidity   float64
	NoiseLevel        float64
	ExternalForce     Vec3
	ForceMode         ForceMode
}

func DefaultParams() Params {
	return Params{
		Length:            100,
		PersistenceLength: 50.0,
		Temperature:       300.0,
		BendingRigidity:   1.0,
		NoiseLevel:        0.5,
	}
}

// Validate reports the first domain violation, if any. Callers at the edit
// boundary must reject invalid params before they reach Generate.
func (p Params) Validate() error {
	if p.Length < 1 {
		return ErrChainLength
	}
	if p.PersistenceLength <= 0 {
		return ErrPersistenceLength
	}
	if p.Temperature <= 0 {
		return ErrTemperature
	}
	if p.BendingRigidity == 0 {
		return ErrBendingRigidity
	}
	if p.NoiseLevel < 0 {
		return ErrNoiseLevel
	}
	return nil
}

// Generate computes the chain backbone for elapsed time t. It is pure and
// deterministic: identical inputs give identical output. The fluctuation
// term is a smooth function of t and the segment index, not a random draw.
//
// The first point is always the origin. Segment vectors are not unit length:
// the direction is normalized before the force term is applied, never after,
// so the force stretches or shrinks individual segments. Out-of-domain
// params (persistence length <= 0, rigidity == 0) yield NaN/Inf points from
// index 1 onward but never a panic.
func Generate(p Params, t float64) []Vec3 {
	if p.Length < 1 {
		return nil
	}

	thermal := math.Sqrt(p.Temperature/p.PersistenceLength) * p.NoiseLevel
	invRigidity := 1.0 / p.BendingRigidity

	points := make([]Vec3, p.Length)
	dir := Vec3{X: 1}
	force := p.ExternalForce

	for i := 1; i < p.Length; i++ {
		fi := float64(i)
		fluct := Vec3{
			X: 0.5 * math.Sin(t+fi) * thermal,
			Y: 0.5 * math.Cos(t+fi) * thermal,
			Z: 0.5 * math.Sin(0.5*t) * thermal,
		}
		dir = dir.Add(fluct).Normalize()

		switch p.ForceMode {
		case ForceConstant:
			dir = dir.Add(p.ExternalForce.Scale(invRigidity))
		default:
			// The scaled force carries over, compounding the attenuation
			// so the influence dies off geometrically along the chain.
			force = force.Scale(invRigidity)
			dir = dir.Add(force)
		}

		points[i] = points[i-1].Add(dir)
	}

	return points
}
