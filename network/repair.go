package network

import "fmt"

// RepairKind tags the single repair slot.
type RepairKind int

const (
	// RepairNone means the scheduler is idle (or due and not yet finalized).
	RepairNone RepairKind = iota
	// RepairNode restores exactly one node.
	RepairNode
	// RepairLink restores exactly one link.
	RepairLink
	// RepairSmart restores one link plus whichever of its endpoints are broken.
	RepairSmart
)

func (k RepairKind) String() string {
	switch k {
	case RepairNone:
		return "none"
	case RepairNode:
		return "node"
	case RepairLink:
		return "link"
	case RepairSmart:
		return "smart"
	default:
		return fmt.Sprintf("RepairKind(%d)", int(k))
	}
}

// noTarget marks an empty repair slot.
const noTarget = -1

// Repair is a snapshot of the scheduler slot.
type Repair struct {
	Kind      RepairKind
	Target    int // node index for RepairNode, link index otherwise; -1 when idle
	Remaining int // ticks left before the repair is due
}

// InFlight reports whether a repair is scheduled and still counting down.
func (r Repair) InFlight() bool { return r.Remaining > 0 }

// Due reports whether a repair is scheduled and its countdown has finished.
func (r Repair) Due() bool { return r.Kind != RepairNone && r.Remaining == 0 }

// ScheduleNodeRepair schedules the repair of node i.
// Preconditions: scheduler idle (counter == 0) and node i broken.
// On violation the state is left unchanged and ErrIllegalSchedule is returned.
func (n *Network) ScheduleNodeRepair(i int) error {
	if err := n.checkIdle("ScheduleNodeRepair", i); err != nil {
		return err
	}
	if i < 0 || i >= len(n.nodeBroken) {
		return fmt.Errorf("ScheduleNodeRepair(%d): %w: %w", i, ErrIllegalSchedule, ErrIndexOutOfRange)
	}
	if !n.nodeBroken[i] {
		return fmt.Errorf("ScheduleNodeRepair(%d): %w: %w", i, ErrIllegalSchedule, ErrComponentHealthy)
	}

	node, _ := n.topo.Node(i)
	n.repair = Repair{Kind: RepairNode, Target: i, Remaining: node.RepairTime()}

	return nil
}

// ScheduleLinkRepair schedules the repair of link i alone.
// Preconditions: scheduler idle and link i broken.
func (n *Network) ScheduleLinkRepair(i int) error {
	if err := n.checkIdle("ScheduleLinkRepair", i); err != nil {
		return err
	}
	if i < 0 || i >= len(n.linkBroken) {
		return fmt.Errorf("ScheduleLinkRepair(%d): %w: %w", i, ErrIllegalSchedule, ErrIndexOutOfRange)
	}
	if !n.linkBroken[i] {
		return fmt.Errorf("ScheduleLinkRepair(%d): %w: %w", i, ErrIllegalSchedule, ErrComponentHealthy)
	}

	link, _ := n.topo.Link(i)
	n.repair = Repair{Kind: RepairLink, Target: i, Remaining: link.RepairTime()}

	return nil
}

// ScheduleSmartRepair schedules a joint repair of link i and its broken
// endpoints. Preconditions: scheduler idle and link i not connected.
// The countdown is JointRepairTime(i).
func (n *Network) ScheduleSmartRepair(i int) error {
	if err := n.checkIdle("ScheduleSmartRepair", i); err != nil {
		return err
	}
	if i < 0 || i >= len(n.linkConnected) {
		return fmt.Errorf("ScheduleSmartRepair(%d): %w: %w", i, ErrIllegalSchedule, ErrIndexOutOfRange)
	}
	if n.linkConnected[i] {
		return fmt.Errorf("ScheduleSmartRepair(%d): %w: %w", i, ErrIllegalSchedule, ErrLinkConnected)
	}

	n.repair = Repair{Kind: RepairSmart, Target: i, Remaining: n.jointRepairTime(i)}

	return nil
}

// checkIdle rejects scheduling while the countdown is running or while a
// finished repair has not been finalized yet.
func (n *Network) checkIdle(method string, i int) error {
	if n.repair.Remaining != 0 || n.repair.Kind != RepairNone {
		return fmt.Errorf("%s(%d): pending %s repair on %d (%d ticks left): %w: %w",
			method, i, n.repair.Kind, n.repair.Target, n.repair.Remaining, ErrIllegalSchedule, ErrRepairInFlight)
	}

	return nil
}

// JointRepairTime returns the time needed to make link i usable: its own
// repair time if broken plus the repair time of each broken endpoint.
// Healthy components contribute 0.
func (n *Network) JointRepairTime(i int) (int, error) {
	if i < 0 || i >= len(n.linkBroken) {
		return 0, fmt.Errorf("JointRepairTime(%d): %w", i, ErrIndexOutOfRange)
	}

	return n.jointRepairTime(i), nil
}

func (n *Network) jointRepairTime(i int) int {
	link, _ := n.topo.Link(i)
	total := 0
	if n.linkBroken[i] {
		total += link.RepairTime()
	}
	if n.nodeBroken[link.From()] {
		from, _ := n.topo.Node(link.From())
		total += from.RepairTime()
	}
	if n.nodeBroken[link.To()] {
		to, _ := n.topo.Node(link.To())
		total += to.RepairTime()
	}

	return total
}

// Tick advances simulated time by one unit: the countdown is decremented if
// positive. It has no other effect.
func (n *Network) Tick() {
	if n.repair.Remaining > 0 {
		n.repair.Remaining--
	}
}

// CompleteIfDue finalizes a repair whose countdown has reached zero.
//
//   - Countdown > 0: returns ErrRepairNotDue (caller broke tick ordering).
//   - Countdown 0 and nothing scheduled: no-op, returns (false, nil).
//   - Countdown 0 and a repair scheduled: clears the health flag(s), updates
//     the broken counters, resets the slot and recomputes connectivity;
//     returns (true, nil).
func (n *Network) CompleteIfDue() (bool, error) {
	if n.repair.Remaining > 0 {
		return false, fmt.Errorf("CompleteIfDue: %s repair on %d has %d ticks left: %w",
			n.repair.Kind, n.repair.Target, n.repair.Remaining, ErrRepairNotDue)
	}

	done := n.repair
	switch done.Kind {
	case RepairNone:
		return false, nil
	case RepairNode:
		n.restoreNode(done.Target)
	case RepairLink:
		n.restoreLink(done.Target)
	case RepairSmart:
		link, _ := n.topo.Link(done.Target)
		n.restoreNode(link.From())
		n.restoreNode(link.To())
		n.restoreLink(done.Target)
	}
	n.repair = Repair{Kind: RepairNone, Target: noTarget}
	n.RecomputeConnectivity()

	n.logger.Debug("repair completed",
		"kind", done.Kind.String(),
		"target", done.Target,
		"broken_nodes", n.brokenNodes,
		"broken_links", n.brokenLinks)

	return true, nil
}

// restoreNode clears node i's broken flag if set, keeping the counter in step.
func (n *Network) restoreNode(i int) {
	if n.nodeBroken[i] {
		n.nodeBroken[i] = false
		n.brokenNodes--
	}
}

// restoreLink clears link i's broken flag if set, keeping the counter in step.
func (n *Network) restoreLink(i int) {
	if n.linkBroken[i] {
		n.linkBroken[i] = false
		n.brokenLinks--
	}
}
