// SPDX-License-Identifier: MIT

package distributed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/internal/mcmc"
	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/schedule"
	"github.com/katalvlaran/qanneal/spin"
)

const tracerName = "qanneal.distributed"

// Config holds the per-worker parameters shared by every rank.
type Config struct {
	SweepsPerBeta     int
	ReplicasPerWorker int
	// Seed is the base seed; rank r uses Seed+r. 0 selects the default seed.
	Seed uint64

	// Logger receives worker lifecycle events. nil ⇒ slog.Default().
	Logger *slog.Logger
	// TracerProvider supplies spans. nil ⇒ otel.GetTracerProvider().
	TracerProvider trace.TracerProvider
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.Default()
}

func (c Config) tracer() trace.Tracer {
	if c.TracerProvider != nil {
		return c.TracerProvider.Tracer(tracerName)
	}

	return otel.Tracer(tracerName)
}

// Summary is one worker's view after the reduction.
type Summary struct {
	Rank int
	Size int

	LocalBestEnergy float64
	LocalBestState  spin.State

	GlobalBestEnergy float64
	GlobalBestState  spin.State
	WinnerRank       int
}

// WorkerSeed returns the seed rank uses for base seed base.
func WorkerSeed(base uint64, rank int) uint64 {
	return mcmc.ResolveSeed(base) + uint64(rank)
}

// Run executes one worker: a local ensemble, the min-location reduction of the
// local best energies, and the broadcast of the winning state from its owner.
//
// Errors: ErrNilCommunicator, ErrInvalidWorld, anneal construction and run
// errors, ErrMalformedCollective and ctx errors from the collectives.
func Run(ctx context.Context, comm Communicator, m ising.Model, sched schedule.Classical, cfg Config) (Summary, error) {
	if comm == nil {
		return Summary{}, ErrNilCommunicator
	}
	rank, size := comm.Rank(), comm.Size()
	if size <= 0 || rank < 0 || rank >= size {
		return Summary{}, fmt.Errorf("rank %d of %d: %w", rank, size, ErrInvalidWorld)
	}

	var (
		log    = cfg.logger().With("rank", rank, "size", size)
		tracer = cfg.tracer()
		seed   = WorkerSeed(cfg.Seed, rank)
		start  = time.Now()
	)
	ctx, span := tracer.Start(ctx, "distributed.Run",
		trace.WithAttributes(
			attribute.Int("qanneal.rank", rank),
			attribute.Int("qanneal.size", size),
			attribute.Int64("qanneal.seed", int64(seed)),
		),
	)
	defer span.End()

	fail := func(err error) (Summary, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("worker.failed", "error", err)

		return Summary{}, err
	}

	log.Info("worker.start", "seed", seed, "replicas", cfg.ReplicasPerWorker, "sweeps_per_beta", cfg.SweepsPerBeta)

	en, err := anneal.NewEnsemble(m, sched, cfg.ReplicasPerWorker, anneal.WithSeed(seed))
	if err != nil {
		return fail(err)
	}
	local, err := en.Run(cfg.SweepsPerBeta, nil)
	if err != nil {
		return fail(err)
	}
	log.Debug("anneal.done", "local_best_energy", local.GlobalBestEnergy, "elapsed", time.Since(start))

	winner, err := allReduce(ctx, tracer, comm, local.GlobalBestEnergy)
	if err != nil {
		return fail(err)
	}
	log.Debug("reduce.done", "global_best_energy", winner.Value, "winner_rank", winner.Rank)

	buf := make([]int8, m.Size())
	if rank == winner.Rank {
		copy(buf, local.GlobalBestState)
	}
	if err = broadcast(ctx, tracer, comm, winner.Rank, buf); err != nil {
		return fail(err)
	}
	log.Debug("broadcast.done", "root", winner.Rank)

	span.SetAttributes(
		attribute.Float64("qanneal.global_best_energy", winner.Value),
		attribute.Int("qanneal.winner_rank", winner.Rank),
	)
	span.SetStatus(codes.Ok, "")
	log.Info("worker.done",
		"local_best_energy", local.GlobalBestEnergy,
		"global_best_energy", winner.Value,
		"winner_rank", winner.Rank,
		"elapsed", time.Since(start),
	)

	return Summary{
		Rank:             rank,
		Size:             size,
		LocalBestEnergy:  local.GlobalBestEnergy,
		LocalBestState:   local.GlobalBestState.Clone(),
		GlobalBestEnergy: winner.Value,
		GlobalBestState:  spin.State(buf),
		WinnerRank:       winner.Rank,
	}, nil
}

func allReduce(ctx context.Context, tracer trace.Tracer, comm Communicator, v float64) (MinLoc, error) {
	ctx, span := tracer.Start(ctx, "distributed.AllReduceMinLoc")
	defer span.End()

	out, err := comm.AllReduceMinLoc(ctx, v)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return MinLoc{}, err
	}
	span.SetAttributes(attribute.Int("qanneal.winner_rank", out.Rank))

	return out, nil
}

func broadcast(ctx context.Context, tracer trace.Tracer, comm Communicator, root int, buf []int8) error {
	ctx, span := tracer.Start(ctx, "distributed.Broadcast",
		trace.WithAttributes(attribute.Int("qanneal.root", root), attribute.Int("qanneal.len", len(buf))))
	defer span.End()

	if err := comm.Broadcast(ctx, root, buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}

// RunLocal runs workers in-process workers over a LocalGroup, one goroutine per
// rank, and returns their summaries in rank order. The first worker error
// cancels the others; no partial result is returned.
func RunLocal(ctx context.Context, workers int, m ising.Model, sched schedule.Classical, cfg Config) ([]Summary, error) {
	group, err := NewLocalGroup(workers)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, workers)
	g, gctx := errgroup.WithContext(ctx)
	for rank := 0; rank < workers; rank++ {
		rank := rank
		comm, err := group.Comm(rank)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			s, err := Run(gctx, comm, m, sched, cfg)
			if err != nil {
				return err
			}
			out[rank] = s

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
