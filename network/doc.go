// Package network holds the mutable state of one simulated communication
// network: which nodes and links are broken, which links are connected,
// the symmetric capacity matrix derived from those flags, and a single-slot
// repair scheduler.
//
// Lifecycle of the repair slot:
//
//	Idle ──Schedule*Repair──▶ Scheduled ──Tick…──▶ Due ──CompleteIfDue──▶ Idle
//
// Only one repair may be in flight. A rejected schedule returns an error
// wrapping ErrIllegalSchedule plus the precise cause and leaves the slot
// untouched.
//
// Failure injectors (random, geographic, targeted) flip health flags and then
// recompute connectivity once. After every exported mutation the matrix
// entry (i,j) equals the capacity of the connected links between i and j.
//
// Example:
//
//	topo, _ := topology.Build(layout, topology.DefaultParams(), topology.NewRand(1))
//	net, _ := network.New(topo)
//	_ = net.InjectRandomFailure(20, topology.NewRand(2))
//	if links := net.DisconnectedLinkIndices(); len(links) > 0 {
//		_ = net.ScheduleSmartRepair(links[0])
//	}
//	for net.Pending().InFlight() {
//		net.Tick()
//	}
//	_, _ = net.CompleteIfDue()
//
// A Network is not safe for concurrent use; Clone gives each goroutine its
// own copy.
package network
