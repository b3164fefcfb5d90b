// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/config"
	"github.com/katalvlaran/qanneal/distributed"
	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/sqa"
	"github.com/katalvlaran/qanneal/telemetry"
)

// report is what a run prints.
type report struct {
	RunID      string  `json:"run_id"`
	Algorithm  string  `json:"algorithm"`
	Backend    string  `json:"backend"`
	Seed       uint64  `json:"seed"`
	Spins      int     `json:"spins"`
	BestEnergy float64 `json:"best_energy"`
	BestState  []int   `json:"best_state"`
	ElapsedMS  int64   `json:"elapsed_ms"`

	EnergyTrace        []float64 `json:"energy_trace,omitempty"`
	MagnetizationTrace []float64 `json:"magnetization_trace,omitempty"`
	SwapAcceptance     []float64 `json:"swap_acceptance,omitempty"`
	WinnerRank         *int      `json:"winner_rank,omitempty"`
	Workers            int       `json:"workers,omitempty"`
}

// execute builds the model, backend and schedule from cfg and runs the
// selected algorithm. When metricsAddr is set the Prometheus observer is
// served there for the duration of the run.
func execute(ctx context.Context, cfg *config.Config, logger *slog.Logger, metricsAddr string) (*report, error) {
	model, err := cfg.Model()
	if err != nil {
		return nil, err
	}
	b, err := cfg.Backend(model)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	prom, err := telemetry.NewPrometheusObserver(cfg.Algorithm, reg)
	if err != nil {
		return nil, err
	}
	if metricsAddr != "" {
		shutdown, err := serveMetrics(metricsAddr, reg, logger)
		if err != nil {
			return nil, err
		}
		defer shutdown()
	}

	rep := &report{
		Algorithm: cfg.Algorithm,
		Backend:   b.Kind().String(),
		Seed:      cfg.Seed,
		Spins:     model.Size(),
	}
	start := time.Now()
	logger.Info("run.start", "algorithm", cfg.Algorithm, "spins", model.Size(), "kind", model.Kind().String())

	var rec telemetry.Recorder
	classical := telemetry.Multi(&rec, prom)

	switch cfg.Algorithm {
	case config.AlgorithmAnneal:
		sched, err := cfg.Classical()
		if err != nil {
			return nil, err
		}
		a, err := anneal.NewWithBackend(b, sched, anneal.WithSeed(cfg.Seed))
		if err != nil {
			return nil, err
		}
		res, err := a.Run(cfg.Sweeps, classical)
		if err != nil {
			return nil, err
		}
		rep.BestEnergy, rep.BestState = res.BestEnergy, res.BestState.Ints()
		rep.EnergyTrace = res.EnergyTrace
		rep.MagnetizationTrace = rec.MagnetizationTrace

	case config.AlgorithmTempering:
		t := cfg.Tempering
		pt, err := anneal.NewTemperingWithBackend(b, t.Betas, anneal.WithSeed(cfg.Seed))
		if err != nil {
			return nil, err
		}
		res, err := pt.Run(cfg.Sweeps, t.Steps, t.SwapInterval, classical)
		if err != nil {
			return nil, err
		}
		rep.BestEnergy, rep.BestState = res.BestEnergy, res.BestState.Ints()
		rep.EnergyTrace = res.AverageEnergyTrace
		rep.SwapAcceptance = res.SwapAcceptanceTrace

	case config.AlgorithmEnsemble:
		sched, err := cfg.Classical()
		if err != nil {
			return nil, err
		}
		en, err := anneal.NewEnsembleWithBackend(b, sched, cfg.Ensemble.Replicas, anneal.WithSeed(cfg.Seed))
		if err != nil {
			return nil, err
		}
		res, err := en.Run(cfg.Sweeps, classical)
		if err != nil {
			return nil, err
		}
		rep.BestEnergy, rep.BestState = res.GlobalBestEnergy, res.GlobalBestState.Ints()
		rep.EnergyTrace = res.AverageEnergyTrace
		rep.MagnetizationTrace = res.AverageMagnetizationTrace

	case config.AlgorithmSQA:
		sched, err := cfg.Quantum()
		if err != nil {
			return nil, err
		}
		q, err := sqa.NewWithBackend(b, sched, cfg.SQA.Slices, cfg.SQA.Replicas, sqa.WithSeed(cfg.Seed))
		if err != nil {
			return nil, err
		}
		var qrec telemetry.QuantumRecorder
		res, err := q.Run(cfg.Sweeps, cfg.SQA.WorldlineSweeps, telemetry.MultiQuantum(&qrec, prom.Quantum()))
		if err != nil {
			return nil, err
		}
		rep.BestEnergy, rep.BestState = res.BestEnergy, res.BestState.Ints()
		rep.EnergyTrace = res.EnergyTrace
		rep.MagnetizationTrace = qrec.MagnetizationTrace

	case config.AlgorithmDistributed:
		if err = runDistributed(ctx, cfg, model, logger, rep); err != nil {
			return nil, err
		}

	default:
		return nil, config.ErrInvalidConfig
	}

	rep.ElapsedMS = time.Since(start).Milliseconds()
	logger.Info("run.done", "best_energy", rep.BestEnergy, "elapsed_ms", rep.ElapsedMS)

	return rep, nil
}

func runDistributed(ctx context.Context, cfg *config.Config, model ising.Model, logger *slog.Logger, rep *report) error {
	sched, err := cfg.Classical()
	if err != nil {
		return err
	}
	summaries, err := distributed.RunLocal(ctx, cfg.Distributed.Workers, model, sched, distributed.Config{
		SweepsPerBeta:     cfg.Sweeps,
		ReplicasPerWorker: cfg.Distributed.ReplicasPerWorker,
		Seed:              cfg.Seed,
		Logger:            logger,
	})
	if err != nil {
		return err
	}

	s := summaries[0]
	winner := s.WinnerRank
	rep.BestEnergy, rep.BestState = s.GlobalBestEnergy, s.GlobalBestState.Ints()
	rep.WinnerRank = &winner
	rep.Workers = s.Size

	return nil
}

// serveMetrics exposes reg over HTTP until the returned func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics.serve", "error", err)
		}
	}()
	logger.Info("metrics.listening", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
