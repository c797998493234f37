// Package repair implements the repair policies that drive a damaged
// network back to full health, one component at a time.
//
//   - Uniform ("random"): picks any broken node or link uniformly.
//   - Greedy ("greedy"): picks the disconnected link with the highest
//     capacity / joint-repair-time ratio and repairs it together with its
//     broken endpoints.
//
// A policy is invoked once per tick. Its Pick first finalizes a repair that
// has become due, then schedules the next one if the slot is free.
// Policies never tick the clock; the caller does.
package repair
