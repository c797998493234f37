// SPDX-License-Identifier: MIT
// Package: netrepair/network
//
// errors.go: sentinel errors for the network state.
//
// Error policy:
//   • Every rejected operation leaves the network unchanged.
//   • Illegal scheduling wraps ErrIllegalSchedule together with the precise
//     cause (ErrRepairInFlight, ErrComponentHealthy, ErrLinkConnected,
//     ErrIndexOutOfRange), so errors.Is matches either.
//   • None of these are fatal; callers simply retry on a later tick.

package network

import "errors"

var (
	// ErrIllegalSchedule classifies every rejected Schedule*Repair call.
	ErrIllegalSchedule = errors.New("network: illegal repair scheduling")

	// ErrRepairInFlight indicates a repair is already scheduled and not finalized.
	ErrRepairInFlight = errors.New("network: a repair is already in flight")

	// ErrComponentHealthy indicates a single-component repair targeted a healthy node or link.
	ErrComponentHealthy = errors.New("network: component is not broken")

	// ErrLinkConnected indicates a smart repair targeted a link that is already connected.
	ErrLinkConnected = errors.New("network: link is already connected")

	// ErrRepairNotDue indicates CompleteIfDue was called while the countdown is still running.
	ErrRepairNotDue = errors.New("network: repair not yet due")

	// ErrIndexOutOfRange indicates a node or link index outside bounds.
	ErrIndexOutOfRange = errors.New("network: index out of range")

	// ErrInvalidPercent indicates a failure percentage outside its domain.
	ErrInvalidPercent = errors.New("network: invalid failure percentage")

	// ErrNilRand indicates a stochastic operation was called without a *rand.Rand.
	ErrNilRand = errors.New("network: rng is required")

	// ErrNilTopology indicates New was called without a topology.
	ErrNilTopology = errors.New("network: topology is nil")
)
