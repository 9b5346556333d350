package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"chessbot/meta"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	MinimaxAgent = "minimax"
	RandomAgent  = "random"

	FirstMatch  = "first"
	RandomMatch = "random"
)

type SearchConfig struct {
	Depth    int    `yaml:"depth"`
	TieBreak string `yaml:"tie_break"`
	Seed     uint64 `yaml:"seed"`
}

type AgentConfig struct {
	ID           int    `yaml:"id"`
	Kind         string `yaml:"kind"`
	SearchConfig `yaml:",inline"`
}

type Matchup struct {
	White int `yaml:"white"` // AgentConfig.ID
	Black int `yaml:"black"` // AgentConfig.ID
}

type MatchConfig struct {
	Name      string        `yaml:"name"`
	Games     int           `yaml:"games"` // Per matchup
	Budget    time.Duration `yaml:"budget"`
	MaxPlies  int           `yaml:"max_plies"`
	StartFEN  string        `yaml:"start_fen"`
	OutputDir string        `yaml:"output_dir"`
	Agents    []AgentConfig `yaml:"agents"`
	Matchups  []Matchup     `yaml:"matchups"`
}

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Search   SearchConfig `yaml:"search"`
	Match    MatchConfig  `yaml:"match"`
}

func Default() Config {
	search := SearchConfig{Depth: meta.DEFAULT_DEPTH, TieBreak: FirstMatch}
	return Config{
		LogLevel: "info",
		Search:   search,
		Match: MatchConfig{
			Name:      "minimax_vs_random",
			Games:     meta.GAMES_PER_MATCHUP,
			Budget:    meta.TURN_BUDGET,
			MaxPlies:  meta.MAX_PLIES,
			OutputDir: "experiments",
			Agents: []AgentConfig{
				{ID: 1, Kind: MinimaxAgent, SearchConfig: search},
				{ID: 2, Kind: RandomAgent, SearchConfig: SearchConfig{Seed: 1}},
			},
			Matchups: []Matchup{{White: 1, Black: 2}, {White: 2, Black: 1}},
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	ids := make(map[int]bool, len(c.Match.Agents))
	for _, a := range c.Match.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d: %w", a.ID, ErrInvalidConfig)
		}
		ids[a.ID] = true
		switch a.Kind {
		case MinimaxAgent:
			if err := a.SearchConfig.Validate(); err != nil {
				return fmt.Errorf("agent %d: %w", a.ID, err)
			}
		case RandomAgent:
		default:
			return fmt.Errorf("agent %d has unknown kind %q: %w", a.ID, a.Kind, ErrInvalidConfig)
		}
	}
	for _, m := range c.Match.Matchups {
		if !ids[m.White] || !ids[m.Black] {
			return fmt.Errorf("matchup %d vs %d names an unknown agent: %w", m.White, m.Black, ErrInvalidConfig)
		}
	}
	if c.Match.Games < 0 || c.Match.MaxPlies < 0 {
		return fmt.Errorf("negative games or max plies: %w", ErrInvalidConfig)
	}
	return nil
}

// Validate checks the search depth and tie break name.
func (s SearchConfig) Validate() error {
	if s.Depth < 1 {
		return fmt.Errorf("depth %d must be at least 1: %w", s.Depth, ErrInvalidConfig)
	}
	switch s.TieBreak {
	case "", FirstMatch, RandomMatch:
		return nil
	default:
		return fmt.Errorf("unknown tie break %q: %w", s.TieBreak, ErrInvalidConfig)
	}
}

// Agent returns the agent config with the given ID.
func (m MatchConfig) Agent(id int) (AgentConfig, bool) {
	for _, a := range m.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return AgentConfig{}, false
}
