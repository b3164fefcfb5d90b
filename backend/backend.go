// SPDX-License-Identifier: MIT

// Package backend wraps an ising.Model behind a uniform evaluation interface so
// that the annealers never depend on how energies are computed.
//
// Only the CPU strategy is implemented. Other strategies are named variants
// that fail explicitly with ErrNotImplemented; there is no silent fallback.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/spin"
)

var (
	// ErrUnknownBackend is returned by ParseKind for an unrecognized name.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrNotImplemented is returned when a named but unavailable strategy is selected.
	ErrNotImplemented = errors.New("backend: not enabled/not implemented")

	// ErrNilModel is returned when a backend is requested for a nil model.
	ErrNilModel = errors.New("backend: model is nil")
)

// Kind names an evaluation strategy.
type Kind int

const (
	// CPU evaluates on the host with the model's own kernels.
	CPU Kind = iota
	// CUDA is reserved for a GPU strategy; selecting it fails with ErrNotImplemented.
	CUDA
)

// String returns the canonical lowercase name.
func (k Kind) String() string {
	switch k {
	case CPU:
		return "cpu"
	case CUDA:
		return "cuda"
	default:
		return "unknown"
	}
}

// ParseKind maps "cpu"/"CPU" and "cuda"/"CUDA" to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "cpu", "CPU":
		return CPU, nil
	case "cuda", "CUDA":
		return CUDA, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", strings.TrimSpace(name), ErrUnknownBackend)
}

// Backend is the evaluation capability used by every annealer.
type Backend interface {
	Kind() Kind
	Size() int
	Energy(s spin.State) (float64, error)
	DeltaEnergy(s spin.State, i int) (float64, error)
}

// CPUBackend delegates straight to the wrapped model.
type CPUBackend struct {
	model ising.Model
}

var _ Backend = (*CPUBackend)(nil)

// NewCPU wraps m. The model is shared, not copied; models are immutable.
func NewCPU(m ising.Model) (*CPUBackend, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	return &CPUBackend{model: m}, nil
}

// Kind returns CPU.
func (b *CPUBackend) Kind() Kind { return CPU }

// Size returns the model size.
func (b *CPUBackend) Size() int { return b.model.Size() }

// Model returns the wrapped model.
func (b *CPUBackend) Model() ising.Model { return b.model }

// Energy delegates to the model.
func (b *CPUBackend) Energy(s spin.State) (float64, error) { return b.model.Energy(s) }

// DeltaEnergy delegates to the model.
func (b *CPUBackend) DeltaEnergy(s spin.State, i int) (float64, error) {
	return b.model.DeltaEnergy(s, i)
}

// New builds the backend of the given kind for m.
// Errors: ErrNilModel, ErrNotImplemented (CUDA), ErrUnknownBackend.
func New(kind Kind, m ising.Model) (Backend, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	switch kind {
	case CPU:
		return NewCPU(m)
	case CUDA:
		return nil, fmt.Errorf("New(%s): %w", kind, ErrNotImplemented)
	}

	return nil, fmt.Errorf("New(%d): %w", int(kind), ErrUnknownBackend)
}

// Open parses name and builds the matching backend.
func Open(name string, m ising.Model) (Backend, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	return New(kind, m)
}
