package repair

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/netrepair/network"
)

// Uniform repairs a broken component chosen uniformly at random from the
// pool of broken nodes followed by broken links. It owns its generator, so
// two runs with the same seed over the same damage repair in the same order.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns the random policy drawing from rng (nil: default seed).
func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rngOrDefault(rng)}
}

// Name implements Policy.
func (u *Uniform) Name() string { return NameRandom }

// Pick implements Policy. One draw in [0, brokenNodes+brokenLinks) selects
// the component; a node schedules a node repair and a link a link repair.
func (u *Uniform) Pick(n *network.Network) (Decision, error) {
	d, ready, err := settle(n)
	if err != nil || !ready {
		return d, err
	}

	nodes := n.BrokenNodeIndices()
	links := n.BrokenLinkIndices()
	sel := u.rng.Intn(len(nodes) + len(links))

	if sel < len(nodes) {
		d.Kind, d.Target = network.RepairNode, nodes[sel]
		err = n.ScheduleNodeRepair(d.Target)
	} else {
		d.Kind, d.Target = network.RepairLink, links[sel-len(nodes)]
		err = n.ScheduleLinkRepair(d.Target)
	}
	if err != nil {
		return Decision{Completed: d.Completed, Kind: network.RepairNone, Target: -1},
			fmt.Errorf("Uniform.Pick: %w", err)
	}
	d.Duration = n.Pending().Remaining

	return d, nil
}
