package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/helix/internal/chain"
)

const (
	DefaultLength      = 100
	DefaultPersistence = 50.0
	DefaultTemperature = 300.0
	DefaultRigidity    = 1.0
	DefaultNoise       = 0.5
	DefaultStep        = 0.01
	DefaultFPS         = 60
)

type Config struct {
	Chain     ChainConfig `yaml:"chain"`
	Step      float64     `yaml:"step"`
	FPS       int         `yaml:"fps"`
	Theme     string      `yaml:"theme"`
	ForceMode string      `yaml:"force_mode"`
}

type ChainConfig struct {
	Length      int         `yaml:"length"`
	Persistence float64     `yaml:"persistence"`
	Temperature float64     `yaml:"temperature"`
	Rigidity    float64     `yaml:"rigidity"`
	Noise       float64     `yaml:"noise"`
	Force       ForceConfig `yaml:"force"`
}

type ForceConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func DefaultConfig() *Config {
	return &Config{
		Chain: ChainConfig{
			Length:      DefaultLength,
			Persistence: DefaultPersistence,
			Temperature: DefaultTemperature,
			Rigidity:    DefaultRigidity,
			Noise:       DefaultNoise,
		},
		Step:      DefaultStep,
		FPS:       DefaultFPS,
		ForceMode: chain.ForceDecay.String(),
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

// Params translates the config into a generator parameter set.
func (c *Config) Params() chain.Params {
	return chain.Params{
		Length:            c.Chain.Length,
		PersistenceLength: c.Chain.Persistence,
		Temperature:       c.Chain.Temperature,
		BendingRigidity:   c.Chain.Rigidity,
		NoiseLevel:        c.Chain.Noise,
		ExternalForce: chain.Vec3{
			X: c.Chain.Force.X,
			Y: c.Chain.Force.Y,
			Z: c.Chain.Force.Z,
		},
		ForceMode: chain.ParseForceMode(c.ForceMode),
	}
}

// Validate delegates domain checks to the chain package.
func (c *Config) Validate() error {
	return c.Params().Validate()
}
