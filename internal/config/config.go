package config

import (
	"os"

	"github.com/IgorGayday/qde/internal/qubo"
	"github.com/IgorGayday/qde/internal/solver"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPoints = 32
	DefaultDx     = 0.1
	DefaultQbits  = 3
	DefaultReads  = 20
	DefaultSweeps = 200
)

type Config struct {
	Preset           string  `yaml:"preset"`
	Points           int     `yaml:"points"`
	Dx               float64 `yaml:"dx"`
	Y0               float64 `yaml:"y0"`
	QbitsInteger     int     `yaml:"qbits_integer"`
	QbitsDecimal     int     `yaml:"qbits_decimal"`
	Signed           bool    `yaml:"signed"`
	PointsPerQUBO    int     `yaml:"points_per_qubo"`
	AverageSolutions bool    `yaml:"average_solutions"`
	MaxAccuracy      int     `yaml:"max_considered_accuracy"`
	Sampler          string  `yaml:"sampler"`
	Reads            int     `yaml:"reads"`
	Sweeps           int     `yaml:"sweeps"`
	Seed             int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:        "cosine",
		Points:        DefaultPoints,
		Dx:            DefaultDx,
		QbitsInteger:  DefaultQbits,
		QbitsDecimal:  DefaultQbits,
		Signed:        true,
		PointsPerQUBO: 1,
		MaxAccuracy:   1,
		Sampler:       "anneal",
		Reads:         DefaultReads,
		Sweeps:        DefaultSweeps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SolverOptions maps the static configuration onto solver options.
func (c *Config) SolverOptions() solver.Options {
	return solver.Options{
		QbitsInteger:     c.QbitsInteger,
		QbitsDecimal:     c.QbitsDecimal,
		Signed:           c.Signed,
		PointsPerQUBO:    c.PointsPerQUBO,
		AverageSolutions: c.AverageSolutions,
		Sampler: qubo.SamplerOptions{
			Reads:  c.Reads,
			Sweeps: c.Sweeps,
			Seed:   c.Seed,
		},
	}
}
