package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/windlab/sailforce/internal/rig"
)

const (
	DefaultWind     = 8.0
	DefaultCourse   = 110.0
	DefaultBoard    = 6.0
	DefaultArea     = 6.5
	DefaultSheeting = 15.0
	DefaultDownhaul = 0.3
	DefaultOuthaul  = 0.3
	DefaultWaterC0  = 40.0
	DefaultWaterC2  = 0.9
)

type Config struct {
	Wind   float64     `yaml:"wind"`   // true wind speed, m/s
	Course float64     `yaml:"course"` // course angle, degrees
	Board  float64     `yaml:"board"`  // board speed, m/s
	Rig    RigConfig   `yaml:"rig"`
	Water  WaterConfig `yaml:"water"`
}

type RigConfig struct {
	Area     float64 `yaml:"area"`     // sail area, m²
	Sheeting float64 `yaml:"sheeting"` // degrees
	Downhaul float64 `yaml:"downhaul"` // [0,1]
	Outhaul  float64 `yaml:"outhaul"`  // [0,1]
}

type WaterConfig struct {
	C0 float64 `yaml:"c0"` // baseline water drag, N
	C2 float64 `yaml:"c2"` // quadratic water drag, N·s²/m²
}

func DefaultConfig() *Config {
	return &Config{
		Wind:   DefaultWind,
		Course: DefaultCourse,
		Board:  DefaultBoard,
		Rig: RigConfig{
			Area:     DefaultArea,
			Sheeting: DefaultSheeting,
			Downhaul: DefaultDownhaul,
			Outhaul:  DefaultOuthaul,
		},
		Water: WaterConfig{
			C0: DefaultWaterC0,
			C2: DefaultWaterC2,
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

// ToInputs converts the scenario into force-model inputs.
func (c *Config) ToInputs() rig.Inputs {
	return rig.Inputs{
		TrueWindSpeed:  c.Wind,
		CourseAngleDeg: c.Course,
		BoardSpeed:     c.Board,
		SailArea:       c.Rig.Area,
		SheetingDeg:    c.Rig.Sheeting,
		Downhaul:       c.Rig.Downhaul,
		Outhaul:        c.Rig.Outhaul,
	}
}

// FromInputs builds a scenario around the given force-model inputs, keeping
// the default water-drag coefficients.
func FromInputs(in rig.Inputs) *Config {
	cfg := DefaultConfig()
	cfg.Wind = in.TrueWindSpeed
	cfg.Course = in.CourseAngleDeg
	cfg.Board = in.BoardSpeed
	cfg.Rig = RigConfig{
		Area:     in.SailArea,
		Sheeting: in.SheetingDeg,
		Downhaul: in.Downhaul,
		Outhaul:  in.Outhaul,
	}
	return cfg
}
