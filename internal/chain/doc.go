// Package chain generates worm-like-chain polymer configurations for the
// animated DNA visualization.
//
// The core is [Generate]: a pure function mapping a parameter set and an
// elapsed-time value to an ordered sequence of backbone points. The thermal
// fluctuation term is a smooth deterministic function of time and segment
// index, so every frame is reproducible; this is a stylized rendering aid,
// not a statistically faithful WLC sampler.
//
//   - [Params]: the six physical parameters plus the force attenuation mode
//   - [Store]: edit boundary with range clamping and domain validation
//   - [Vec3]: small 3D vector used for points and forces
//
// # Validity
//
// Generate is total on float inputs: out-of-domain parameters (persistence
// length <= 0, bending rigidity == 0) produce non-finite points instead of
// errors. [Store] keeps such values from ever reaching Generate during
// normal operation.
package chain
