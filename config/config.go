// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Algorithm names accepted in the algorithm field.
const (
	AlgorithmAnneal      = "anneal"
	AlgorithmTempering   = "tempering"
	AlgorithmEnsemble    = "ensemble"
	AlgorithmSQA         = "sqa"
	AlgorithmDistributed = "distributed"
)

// Model kinds accepted in model.kind.
const (
	ModelDense     = "dense"
	ModelSparse    = "sparse"
	ModelQUBO      = "qubo"
	ModelGenerated = "generated"
)

var (
	// ErrInvalidConfig wraps every parse and validation failure.
	ErrInvalidConfig = errors.New("config: invalid run file")

	// ErrMissingField is returned when the selected algorithm needs a section
	// that was left empty.
	ErrMissingField = errors.New("config: required field missing for algorithm")
)

var validate = validator.New()

// Config is a whole run file. BackendName and ModelSpec hold the backend and
// model sections; the Backend and Model methods build from them.
type Config struct {
	Algorithm   string `yaml:"algorithm" validate:"required,oneof=anneal tempering ensemble sqa distributed"`
	BackendName string `yaml:"backend" validate:"oneof=cpu CPU cuda CUDA"`
	Seed        uint64 `yaml:"seed"`
	Sweeps      int    `yaml:"sweeps" validate:"gt=0"`

	ModelSpec   Model       `yaml:"model"`
	Schedule    Schedule    `yaml:"schedule"`
	Tempering   Tempering   `yaml:"tempering"`
	Ensemble    Ensemble    `yaml:"ensemble"`
	SQA         SQA         `yaml:"sqa"`
	Distributed Distributed `yaml:"distributed"`
}

// Model describes the energy function. A generated model takes its spin count
// from the generator shape, so n is ignored for it.
type Model struct {
	Kind      string      `yaml:"kind" validate:"required,oneof=dense sparse qubo generated"`
	N         int         `yaml:"n" validate:"gte=0"`
	H         []float64   `yaml:"h"`
	J         [][]float64 `yaml:"j"`
	Edges     []Edge      `yaml:"edges" validate:"dive"`
	Q         [][]float64 `yaml:"q"`
	Constant  float64     `yaml:"constant"`
	Generator Generator   `yaml:"generator"`
}

// Generator describes a benchmark instance built on a standard topology.
// Size is the spin count of every shape but grid, which uses rows×cols.
type Generator struct {
	Shape    string       `yaml:"shape" validate:"omitempty,oneof=chain ring grid complete star random regular"`
	Size     int          `yaml:"size" validate:"gte=0"`
	Rows     int          `yaml:"rows" validate:"gte=0"`
	Cols     int          `yaml:"cols" validate:"gte=0"`
	Periodic bool         `yaml:"periodic"`
	P        float64      `yaml:"p" validate:"gte=0,lte=1"`
	Degree   int          `yaml:"degree" validate:"gte=0"`
	Seed     uint64       `yaml:"seed"`
	Coupling Distribution `yaml:"coupling"`
	Field    Distribution `yaml:"field"`
}

// Distribution selects a coefficient distribution. An empty dist keeps the
// generator default: ferromagnetic -1 couplings and zero fields.
type Distribution struct {
	Dist   string  `yaml:"dist" validate:"omitempty,oneof=constant uniform normal pm"`
	Value  float64 `yaml:"value"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max" validate:"gtefield=Min"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev" validate:"gte=0"`
}

// Edge is one sparse coupling.
type Edge struct {
	I int     `yaml:"i" validate:"gte=0"`
	J int     `yaml:"j" validate:"gte=0"`
	W float64 `yaml:"w"`
}

// Schedule describes either a β ramp or an explicit list, plus Γ for sqa.
type Schedule struct {
	BetaStart  float64   `yaml:"beta_start"`
	BetaEnd    float64   `yaml:"beta_end"`
	Steps      int       `yaml:"steps" validate:"gte=0"`
	Geometric  bool      `yaml:"geometric"`
	Betas      []float64 `yaml:"betas"`
	GammaStart float64   `yaml:"gamma_start"`
	GammaEnd   float64   `yaml:"gamma_end"`
	Gammas     []float64 `yaml:"gammas"`
}

// Tempering holds the parallel-tempering ladder.
type Tempering struct {
	Betas        []float64 `yaml:"betas"`
	Steps        int       `yaml:"steps" validate:"gte=0"`
	SwapInterval int       `yaml:"swap_interval" validate:"gt=0"`
}

// Ensemble holds the replica count of an ensemble run.
type Ensemble struct {
	Replicas int `yaml:"replicas" validate:"gt=0"`
}

// SQA holds the Trotter lattice shape.
type SQA struct {
	Slices          int `yaml:"slices" validate:"gte=0"`
	Replicas        int `yaml:"replicas" validate:"gt=0"`
	WorldlineSweeps int `yaml:"worldline_sweeps" validate:"gte=0"`
}

// Distributed holds the in-process world size.
type Distributed struct {
	Workers           int `yaml:"workers" validate:"gt=0"`
	ReplicasPerWorker int `yaml:"replicas_per_worker" validate:"gt=0"`
}

// Load reads and parses the run file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data, applies defaults and validates the result.
// Errors: ErrInvalidConfig (wrapping the decoder or validator error), ErrMissingField.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	cfg.applyDefaults()

	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BackendName == "" {
		c.BackendName = "cpu"
	}
	if c.Tempering.SwapInterval == 0 {
		c.Tempering.SwapInterval = 1
	}
	if c.Ensemble.Replicas == 0 {
		c.Ensemble.Replicas = 1
	}
	if c.SQA.Replicas == 0 {
		c.SQA.Replicas = 1
	}
	if c.Distributed.Workers == 0 {
		c.Distributed.Workers = 1
	}
	if c.Distributed.ReplicasPerWorker == 0 {
		c.Distributed.ReplicasPerWorker = 1
	}
}

// check enforces the cross-field rules of the selected algorithm.
func (c *Config) check() error {
	missing := func(field string) error {
		return fmt.Errorf("%s needs %s: %w", c.Algorithm, field, ErrMissingField)
	}

	switch m := c.ModelSpec; {
	case m.Kind == ModelGenerated && m.Generator.Shape == "":
		return fmt.Errorf("model needs generator.shape: %w", ErrMissingField)
	case m.Kind != ModelGenerated && m.N == 0:
		return fmt.Errorf("model needs n: %w", ErrMissingField)
	}

	switch c.Algorithm {
	case AlgorithmTempering:
		if len(c.Tempering.Betas) < 2 {
			return missing("tempering.betas (at least two)")
		}
		if c.Tempering.Steps == 0 {
			return missing("tempering.steps")
		}
	case AlgorithmSQA:
		if c.SQA.Slices == 0 {
			return missing("sqa.slices")
		}
		if len(c.Schedule.Betas) == 0 && c.Schedule.Steps == 0 {
			return missing("schedule.steps or schedule.betas")
		}
		if len(c.Schedule.Betas) > 0 && len(c.Schedule.Gammas) == 0 {
			return missing("schedule.gammas alongside schedule.betas")
		}
		if len(c.Schedule.Gammas) > 0 && len(c.Schedule.Betas) == 0 {
			return missing("schedule.betas alongside schedule.gammas")
		}
	default:
		if len(c.Schedule.Betas) == 0 && c.Schedule.Steps == 0 {
			return missing("schedule.steps or schedule.betas")
		}
	}

	return nil
}
