package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMass        = 2.0
	DefaultAngle       = 30.0
	DefaultMu          = 0.2
	DefaultSpeed       = 20.0
	DefaultRadius      = 1.5
	DefaultRestitution = 1.0
)

// Params holds the scenario scalars a tutoring response supplies.
// Angles are degrees, masses kg, speeds m/s.
type Params struct {
	Mass        float64 `yaml:"mass"`
	Mass2       float64 `yaml:"mass2"`
	Angle       float64 `yaml:"angle"`
	Mu          float64 `yaml:"mu"`
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	Velocity1   float64 `yaml:"velocity1"`
	Velocity2   float64 `yaml:"velocity2"`
	Restitution float64 `yaml:"restitution"`
	Applied     float64 `yaml:"applied"`
	Gravity     float64 `yaml:"gravity"`
}

// Set adjusts one named parameter, for what-if sliders and sweeps.
func (p *Params) Set(name string, value float64) error {
	switch name {
	case "mass":
		p.Mass = value
	case "mass2":
		p.Mass2 = value
	case "angle":
		p.Angle = value
	case "mu":
		p.Mu = value
	case "speed":
		p.Speed = value
	case "radius":
		p.Radius = value
	case "velocity1":
		p.Velocity1 = value
	case "velocity2":
		p.Velocity2 = value
	case "restitution":
		p.Restitution = value
	case "applied":
		p.Applied = value
	case "gravity":
		p.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// StepFlags enables the synthetic trailing steps.
type StepFlags struct {
	NetForce bool `yaml:"net_force"`
	Momentum bool `yaml:"momentum"`
	Energy   bool `yaml:"energy"`
}

type Config struct {
	Scenario string    `yaml:"scenario"`
	Title    string    `yaml:"title"`
	Params   Params    `yaml:"params"`
	Steps    StepFlags `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "incline",
		Params: Params{
			Mass:        DefaultMass,
			Mass2:       3.0,
			Angle:       DefaultAngle,
			Mu:          DefaultMu,
			Speed:       DefaultSpeed,
			Radius:      DefaultRadius,
			Restitution: DefaultRestitution,
		},
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
