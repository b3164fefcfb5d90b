// SPDX-License-Identifier: MIT

// Package config loads a YAML run file and turns it into the library objects a
// run needs: an Ising model, a compute backend and a classical or quantum
// schedule.
//
// Parsing uses gopkg.in/yaml.v3 with unknown fields rejected; field constraints
// are expressed as go-playground/validator tags, and the rules that depend on
// the selected algorithm are checked afterwards. Defaults are applied before
// validation:
//
//	backend: cpu
//	tempering.swap_interval: 1
//	ensemble.replicas: 1
//	sqa.replicas: 1, sqa.worldline_sweeps: 0
//	distributed.workers: 1, distributed.replicas_per_worker: 1
package config
