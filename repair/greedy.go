package repair

import (
	"fmt"

	"github.com/katalvlaran/netrepair/network"
)

// Greedy repairs the disconnected link with the best capacity per unit of
// joint repair time, restoring the link together with its broken endpoints
// in a single smart repair.
type Greedy struct{}

// NewGreedy returns the efficiency-ratio policy. It is stateless.
func NewGreedy() *Greedy { return &Greedy{} }

// Name implements Policy.
func (g *Greedy) Name() string { return NameGreedy }

// Pick implements Policy.
//
// Every link that is not connected is scored capacity / JointRepairTime.
// The highest score wins; on ties the lowest link index is kept. When every
// link is connected but broken nodes remain (nodes without links), the
// lowest broken node gets a plain node repair so the campaign terminates.
//
// Complexity: O(E).
func (g *Greedy) Pick(n *network.Network) (Decision, error) {
	d, ready, err := settle(n)
	if err != nil || !ready {
		return d, err
	}

	best, bestRatio := -1, -1.0
	topo := n.Topology()
	for _, k := range n.DisconnectedLinkIndices() {
		jt, err := n.JointRepairTime(k)
		if err != nil {
			return d, fmt.Errorf("Greedy.Pick: %w", err)
		}
		l, _ := topo.Link(k)
		if ratio := float64(l.Capacity()) / float64(jt); ratio > bestRatio {
			best, bestRatio = k, ratio
		}
	}

	if best < 0 {
		nodes := n.BrokenNodeIndices()
		if len(nodes) == 0 {
			return d, nil
		}
		if err := n.ScheduleNodeRepair(nodes[0]); err != nil {
			return d, fmt.Errorf("Greedy.Pick: %w", err)
		}
		d.Kind, d.Target, d.Duration = network.RepairNode, nodes[0], n.Pending().Remaining
		return d, nil
	}

	if err := n.ScheduleSmartRepair(best); err != nil {
		return d, fmt.Errorf("Greedy.Pick: %w", err)
	}
	d.Kind, d.Target = network.RepairSmart, best
	d.Duration, d.Ratio = n.Pending().Remaining, bestRatio

	return d, nil
}
