package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
)

const (
	DefaultRows         = 20
	DefaultCols         = 25
	DefaultAlgorithm    = "bfs"
	DefaultTheme        = "classic"
	DefaultStepDelayMS  = 50
	DefaultObstacleRate = 0.001

	// Step delays for the original speed buttons, in milliseconds.
	SpeedSlow   = 200
	SpeedNormal = 100
	SpeedFast   = 50
)

type Config struct {
	Rows             int     `yaml:"rows"`
	Cols             int     `yaml:"cols"`
	Algorithm        string  `yaml:"algorithm"`
	Theme            string  `yaml:"theme"`
	StepDelayMS      int     `yaml:"step_delay_ms"`
	Seed             int64   `yaml:"seed"`
	DynamicObstacles bool    `yaml:"dynamic_obstacles"`
	ObstacleRate     float64 `yaml:"obstacle_rate"`
	Preset           string  `yaml:"preset"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		Algorithm:    DefaultAlgorithm,
		Theme:        DefaultTheme,
		StepDelayMS:  DefaultStepDelayMS,
		ObstacleRate: DefaultObstacleRate,
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

// BuildGrid constructs the board the config describes: a preset layout when
// one is named, otherwise an open grid with the default endpoint placement.
func (c *Config) BuildGrid() (*grid.Grid, error) {
	if c.Preset != "" {
		p := GetPreset(c.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", c.Preset, ListPresets())
		}
		return p.BuildGrid()
	}

	g, err := grid.New(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	start, target := defaultEndpoints(c.Rows, c.Cols)
	if err := g.SetRole(start, grid.RoleStart); err != nil {
		return nil, err
	}
	if err := g.SetRole(target, grid.RoleTarget); err != nil {
		return nil, err
	}
	return g, nil
}

// defaultEndpoints mirrors the original board: start near the top-left
// corner, target near the bottom-right. Tiny grids fall back to the exact
// corners.
func defaultEndpoints(rows, cols int) (grid.Coord, grid.Coord) {
	if rows < 4 || cols < 4 {
		return grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: rows - 1, Col: cols - 1}
	}
	return grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: rows - 2, Col: cols - 2}
}
