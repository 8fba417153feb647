// Package rotor models a rigid rotating body as a set of point masses and
// derives its imbalance metrics: combined center of mass, radial offset from
// the spin axis, centrifugal force at a given angular speed, and a sinusoidal
// displacement proxy signal.
//
// The displacement signal is a deliberate simplification: a pure sinusoid
// whose amplitude equals the radial center-of-mass offset. It is a visual
// vibration proxy, not a rotor-dynamics model.
package rotor
