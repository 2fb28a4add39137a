// Package kernel computes the closed-form physics behind each diagram
// scenario:
//
//   - [Projectile]: trajectory, time of flight, apex
//   - [Incline]: weight decomposition, normal force, capped friction
//   - [Atwood]: two-mass pulley acceleration and tension
//   - [Circular]: centripetal acceleration, force, angular velocity
//   - [Collision]: 1-D two-body collision with restitution
//
// Every function is pure and deterministic: explicit scalar parameters
// in, a result record out. No global state, no randomness, no I/O.
//
// # Preconditions
//
// The kernel does not validate inputs. Degenerate parameters (zero total
// mass for [Atwood], zero radius for [Circular], non-positive gravity)
// are the caller's responsibility to reject; scenario builders do that
// validation before calling in here.
package kernel
