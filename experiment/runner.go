// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netrepair/flow"
	"github.com/katalvlaran/netrepair/metrics"
	"github.com/katalvlaran/netrepair/network"
	"github.com/katalvlaran/netrepair/repair"
)

var (
	// ErrInvalidRunner indicates a Runner with unusable settings.
	ErrInvalidRunner = errors.New("experiment: invalid runner")

	// ErrStalled indicates a policy left the scheduler idle while damage
	// remained, so the campaign could never finish.
	ErrStalled = errors.New("experiment: policy scheduled nothing on a damaged network")
)

// maxRejects bounds consecutive rejected schedules before a run is declared
// stalled.
const maxRejects = 3

// Runner drives repair campaigns and samples the source-to-sink max flow.
//
// Intervals is the number of regular samples; Series.Samples has
// Intervals+1 slots, the last one holding the flow at full recovery.
type Runner struct {
	Source    int
	Sink      int
	Intervals int

	Logger      *slog.Logger      // nil: discard
	Recorder    *metrics.Registry // nil: no metrics
	FlowOptions flow.Options
}

// Series is the outcome of one campaign.
type Series struct {
	RunID   string
	Policy  string
	Initial int64   // flow of the undamaged network
	Samples []int64 // Intervals+1 slots
	Average float64 // mean over all slots
	Ticks   int
	Repairs int
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}

// Run repairs net in place with policy until it is fully healthy.
//
// Every slot starts at the flow of the undamaged network. With
// est = TotalRepairTimeRemaining() at the start and step = max(1, est/Intervals),
// each tick calls policy.Pick, advances the clock, and records slot k when
// clock == k·step for k < Intervals. The tick that clears the last damage
// also records slot Intervals. Context cancellation is checked every tick.
func (r *Runner) Run(ctx context.Context, net *network.Network, policy repair.Policy) (Series, error) {
	if r.Intervals < 1 {
		return Series{}, fmt.Errorf("Run: intervals=%d: %w", r.Intervals, ErrInvalidRunner)
	}
	if net == nil || policy == nil {
		return Series{}, fmt.Errorf("Run: nil network or policy: %w", ErrInvalidRunner)
	}

	s := Series{RunID: uuid.NewString(), Policy: policy.Name()}
	log := r.logger().With("run_id", s.RunID, "policy", s.Policy)
	opts := r.FlowOptions
	opts.Ctx = ctx

	healthy, err := network.New(net.Topology())
	if err != nil {
		return Series{}, fmt.Errorf("Run: %w", err)
	}
	if s.Initial, err = healthy.MaxFlow(r.Source, r.Sink, &opts); err != nil {
		return Series{}, fmt.Errorf("Run: initial flow: %w", err)
	}
	s.Samples = make([]int64, r.Intervals+1)
	for i := range s.Samples {
		s.Samples[i] = s.Initial
	}

	est := net.TotalRepairTimeRemaining()
	step := max(1, est/r.Intervals)
	log.Info("campaign started",
		"broken_nodes", net.BrokenNodes(),
		"broken_links", net.BrokenLinks(),
		"estimated_ticks", est,
		"step", step,
		"initial_flow", s.Initial)

	clock, rec, rejected := 0, 0, 0
	for damaged(net) {
		if err := ctx.Err(); err != nil {
			return s, fmt.Errorf("Run: tick %d: %w", clock, err)
		}

		d, err := policy.Pick(net)
		switch {
		case errors.Is(err, network.ErrIllegalSchedule):
			rejected++
			log.Debug("schedule rejected", "tick", clock, "error", err)
			if rejected > maxRejects {
				return s, fmt.Errorf("Run: tick %d: %w: %w", clock, ErrStalled, err)
			}
		case err != nil:
			return s, fmt.Errorf("Run: tick %d: %w", clock, err)
		default:
			rejected = 0
		}
		r.record(log, s.Policy, clock, d, &s)
		if err == nil && damaged(net) && net.Idle() {
			return s, fmt.Errorf("Run: tick %d: %w", clock, ErrStalled)
		}

		net.Tick()
		r.Recorder.RecordTick(s.Policy, net)

		if rec < r.Intervals && clock == rec*step {
			if s.Samples[rec], err = r.sample(net, &opts, &s); err != nil {
				return s, fmt.Errorf("Run: tick %d: %w", clock, err)
			}
			rec++
		}
		if !damaged(net) {
			if s.Samples[r.Intervals], err = r.sample(net, &opts, &s); err != nil {
				return s, fmt.Errorf("Run: tick %d: %w", clock, err)
			}
		}
		clock++
	}

	s.Ticks = clock
	s.Average = average(s.Samples)
	r.Recorder.RecordAverage(s.Policy, s.Average)
	log.Info("campaign finished",
		"ticks", s.Ticks,
		"repairs", s.Repairs,
		"samples", rec,
		"average_flow", s.Average)

	return s, nil
}

// record logs and counts what one Pick did.
func (r *Runner) record(log *slog.Logger, policy string, clock int, d repair.Decision, s *Series) {
	if d.Completed.Kind != network.RepairNone {
		s.Repairs++
		r.Recorder.RecordCompleted(policy, d.Completed.Kind.String())
		log.Debug("repair completed", "tick", clock, "kind", d.Completed.Kind.String(), "target", d.Completed.Target)
	}
	if d.Scheduled() {
		r.Recorder.RecordScheduled(policy, d.Kind.String(), d.Duration)
		log.Debug("repair scheduled",
			"tick", clock,
			"kind", d.Kind.String(),
			"target", d.Target,
			"duration", d.Duration,
			"ratio", d.Ratio)
	}
}

func (r *Runner) sample(net *network.Network, opts *flow.Options, s *Series) (int64, error) {
	f, err := net.MaxFlow(r.Source, r.Sink, opts)
	if err != nil {
		return 0, err
	}
	r.Recorder.RecordFlow(s.Policy, f)

	return f, nil
}

// Compare runs every policy on its own clone of base concurrently. base is
// not modified. Results are in the order of policies; the first error
// cancels the remaining runs.
func (r *Runner) Compare(ctx context.Context, base *network.Network, policies ...repair.Policy) ([]Series, error) {
	if base == nil {
		return nil, fmt.Errorf("Compare: nil network: %w", ErrInvalidRunner)
	}
	out := make([]Series, len(policies))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range policies {
		i, p := i, p
		net := base.Clone()
		g.Go(func() error {
			s, err := r.Run(ctx, net, p)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	return out, nil
}

func damaged(n *network.Network) bool {
	return n.BrokenNodes()+n.BrokenLinks() > 0
}

func average(xs []int64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum int64
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}
