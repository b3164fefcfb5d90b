// SPDX-License-Identifier: MIT

package anneal

import "errors"

var (
	// ErrNilBackend is returned when an annealer is built without a backend.
	ErrNilBackend = errors.New("anneal: backend is nil")

	// ErrEmptySchedule is returned for a schedule with no β values.
	ErrEmptySchedule = errors.New("anneal: schedule must contain at least one beta")

	// ErrNoSweeps is returned when sweeps per β (or per step) is <= 0.
	ErrNoSweeps = errors.New("anneal: sweeps must be > 0")

	// ErrNoSteps is returned when a tempering run asks for <= 0 steps.
	ErrNoSteps = errors.New("anneal: steps must be > 0")

	// ErrNoSwapInterval is returned when the replica-exchange interval is <= 0.
	ErrNoSwapInterval = errors.New("anneal: swap interval must be > 0")

	// ErrTooFewRungs is returned when parallel tempering gets fewer than two β values.
	ErrTooFewRungs = errors.New("anneal: parallel tempering requires at least two betas")

	// ErrNoReplicas is returned when an ensemble is built with <= 0 replicas.
	ErrNoReplicas = errors.New("anneal: replicas must be > 0")
)
