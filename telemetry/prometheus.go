// SPDX-License-Identifier: MIT

package telemetry

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/spin"
	"github.com/katalvlaran/qanneal/sqa"
)

// ErrRegistration is returned when a collector cannot be registered.
var ErrRegistration = errors.New("telemetry: metric registration failed")

const namespace = "qanneal"

var _ anneal.Observer = (*PrometheusObserver)(nil)

// PrometheusObserver publishes the most recent step of a run.
//
// Exported series (all labelled by algorithm):
//
//	qanneal_step, qanneal_beta, qanneal_gamma, qanneal_energy,
//	qanneal_magnetization (gauges) and qanneal_steps_total (counter).
type PrometheusObserver struct {
	algorithm string

	step          *prometheus.GaugeVec
	beta          *prometheus.GaugeVec
	gamma         *prometheus.GaugeVec
	energy        *prometheus.GaugeVec
	magnetization *prometheus.GaugeVec
	steps         *prometheus.CounterVec
}

// NewPrometheusObserver registers the collectors on reg (nil ⇒
// prometheus.DefaultRegisterer). Collectors that are already registered, for
// example by an observer for another algorithm, are reused.
func NewPrometheusObserver(algorithm string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := []string{"algorithm"}
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}, labels)
	}

	p := &PrometheusObserver{
		algorithm:     algorithm,
		step:          gauge("step", "Index of the last completed schedule step."),
		beta:          gauge("beta", "Inverse temperature of the last completed step."),
		gamma:         gauge("gamma", "Transverse field of the last completed quantum step."),
		energy:        gauge("energy", "Energy reported for the last completed step."),
		magnetization: gauge("magnetization", "Mean spin of the reported configuration."),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Completed schedule steps.",
		}, labels),
	}

	var err error
	if p.step, err = registerGauge(reg, p.step); err != nil {
		return nil, err
	}
	if p.beta, err = registerGauge(reg, p.beta); err != nil {
		return nil, err
	}
	if p.gamma, err = registerGauge(reg, p.gamma); err != nil {
		return nil, err
	}
	if p.energy, err = registerGauge(reg, p.energy); err != nil {
		return nil, err
	}
	if p.magnetization, err = registerGauge(reg, p.magnetization); err != nil {
		return nil, err
	}
	if err = reg.Register(p.steps); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, errors.Join(ErrRegistration, err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, errors.Join(ErrRegistration, err)
		}
		p.steps = existing
	}

	return p, nil
}

func registerGauge(reg prometheus.Registerer, g *prometheus.GaugeVec) (*prometheus.GaugeVec, error) {
	err := reg.Register(g)
	if err == nil {
		return g, nil
	}
	var already prometheus.AlreadyRegisteredError
	if !errors.As(err, &already) {
		return nil, errors.Join(ErrRegistration, err)
	}
	existing, ok := already.ExistingCollector.(*prometheus.GaugeVec)
	if !ok {
		return nil, errors.Join(ErrRegistration, err)
	}

	return existing, nil
}

// Algorithm returns the label value this observer writes.
func (p *PrometheusObserver) Algorithm() string { return p.algorithm }

// Observe implements anneal.Observer.
func (p *PrometheusObserver) Observe(step int, beta, energy float64, state spin.State) {
	p.record(step, beta, energy, spin.Magnetization(state))
}

// Quantum returns an sqa.Observer view that also publishes Γ and the lattice
// magnetisation.
func (p *PrometheusObserver) Quantum() sqa.Observer {
	return sqa.ObserverFunc(func(step int, beta, gamma, avgEnergy float64, lattice *sqa.Lattice) {
		p.gamma.WithLabelValues(p.algorithm).Set(gamma)
		p.record(step, beta, avgEnergy, lattice.Magnetization())
	})
}

func (p *PrometheusObserver) record(step int, beta, energy, magnetization float64) {
	p.step.WithLabelValues(p.algorithm).Set(float64(step))
	p.beta.WithLabelValues(p.algorithm).Set(beta)
	p.energy.WithLabelValues(p.algorithm).Set(energy)
	p.magnetization.WithLabelValues(p.algorithm).Set(magnetization)
	p.steps.WithLabelValues(p.algorithm).Inc()
}
