// SPDX-License-Identifier: MIT

package repair

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/netrepair/network"
	"github.com/katalvlaran/netrepair/topology"
)

// ErrUnknownPolicy indicates ByName was given a name no policy answers to.
var ErrUnknownPolicy = errors.New("repair: unknown policy")

// Policy names accepted by ByName.
const (
	NameRandom = "random"
	NameGreedy = "greedy"
)

// Policy decides which component to repair next.
//
// Pick is called once per simulated tick, before the tick is applied. It
// finalizes a due repair (CompleteIfDue) and, if the scheduler is then idle
// and damage remains, schedules exactly one new repair. When a repair is
// still counting down Pick does nothing.
type Policy interface {
	Name() string
	Pick(n *network.Network) (Decision, error)
}

// Decision reports what one Pick call did.
type Decision struct {
	// Completed is the repair finalized by this call (Kind == RepairNone if none).
	Completed network.Repair
	// Kind and Target describe the newly scheduled repair; Kind is
	// network.RepairNone when nothing was scheduled.
	Kind   network.RepairKind
	Target int
	// Duration is the countdown of the new repair.
	Duration int
	// Ratio is the capacity per unit of repair time of the chosen link
	// (Greedy only; 0 otherwise).
	Ratio float64
}

// Scheduled reports whether the call put a new repair in the slot.
func (d Decision) Scheduled() bool { return d.Kind != network.RepairNone }

// settle finalizes a due repair and reports whether a new repair may be
// scheduled now. The returned Decision carries the finalized repair, if any.
func settle(n *network.Network) (Decision, bool, error) {
	d := Decision{
		Completed: network.Repair{Kind: network.RepairNone, Target: -1},
		Kind:      network.RepairNone,
		Target:    -1,
	}
	pending := n.Pending()
	if pending.InFlight() {
		return d, false, nil
	}
	done, err := n.CompleteIfDue()
	if err != nil {
		return d, false, err
	}
	if done {
		d.Completed = pending
	}
	if n.BrokenNodes()+n.BrokenLinks() == 0 {
		return d, false, nil
	}

	return d, true, nil
}

// ByName resolves a policy by its configuration name. rng feeds the random
// policy; nil means a generator seeded with topology.DefaultSeed.
func ByName(name string, rng *rand.Rand) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameRandom, "uniform":
		return NewUniform(rng), nil
	case NameGreedy, "ratio":
		return NewGreedy(), nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownPolicy)
	}
}

// rngOrDefault substitutes the default-seeded generator for nil.
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return topology.NewRand(topology.DefaultSeed)
	}
	return rng
}
