package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"baseball-replay/internal/model"
	"baseball-replay/internal/sim"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Game   GameConfig   `yaml:"game"`
	Server ServerConfig `yaml:"server"`
}

// DataConfig points at the season stat exports the league is built from.
type DataConfig struct {
	BattingFile  string `yaml:"batting_file"`
	PitchingFile string `yaml:"pitching_file"`
	FieldingFile string `yaml:"fielding_file"`
}

type GameConfig struct {
	// ScoringRule is "hold" or "aggressive"; empty means hold.
	ScoringRule string `yaml:"scoring_rule"`
	// MaxInnings caps game length; 0 means the engine default.
	MaxInnings int `yaml:"max_innings"`
	// Seed makes games reproducible; 0 means a fresh game every run.
	Seed uint64 `yaml:"seed"`
	// Away and Home are the default matchup for the CLI.
	Away string `yaml:"away"`
	Home string `yaml:"home"`

	// Optional: load model params from a separate YAML (e.g. examples/params/*.yaml).
	// If both ParamsFile and Params are provided, Params overrides ParamsFile.
	ParamsFile string       `yaml:"params_file"`
	Params     ParamsConfig `yaml:"params"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ParamsConfig mirrors sim.Params field by field. Zero fields fall back to
// the league defaults, so a config only names what it tunes.
type ParamsConfig struct {
	LeagueWHIP     float64 `yaml:"league_whip"`
	WHIPWeight     float64 `yaml:"whip_weight"`
	OnBaseFloor    float64 `yaml:"on_base_floor"`
	OnBaseCeil     float64 `yaml:"on_base_ceil"`
	DefenseDivisor float64 `yaml:"defense_divisor"`
	WalkRate       float64 `yaml:"walk_rate"`
	SingleRate     float64 `yaml:"single_rate"`
	XBHRate        float64 `yaml:"xbh_rate"`
	TripleShare    float64 `yaml:"triple_share"`
	PowerScale     float64 `yaml:"power_scale"`
	FatigueStep    float64 `yaml:"fatigue_step"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If params_file is set, load it and merge in any explicit overrides
	// from game.params.
	if c.Game.ParamsFile != "" {
		loaded, err := loadParamsFile(resolvePath(path, c.Game.ParamsFile))
		if err != nil {
			return nil, err
		}
		c.Game.Params = MergeParams(loaded, c.Game.Params)
	}
	c.Data.BattingFile = resolvePath(path, c.Data.BattingFile)
	c.Data.PitchingFile = resolvePath(path, c.Data.PitchingFile)
	c.Data.FieldingFile = resolvePath(path, c.Data.FieldingFile)
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.BattingFile == "" {
		return errors.New("data.batting_file is required")
	}
	if c.Data.PitchingFile == "" {
		return errors.New("data.pitching_file is required")
	}
	if c.Data.FieldingFile == "" {
		return errors.New("data.fielding_file is required")
	}
	if _, err := model.ParseScoringRule(c.Game.ScoringRule); err != nil {
		return fmt.Errorf("game.scoring_rule: %w", err)
	}
	if c.Game.MaxInnings < 0 {
		return errors.New("game.max_innings must be >= 0")
	}
	if err := c.Game.Params.ToSimParams().Validate(); err != nil {
		return fmt.Errorf("game.params invalid: %w", err)
	}
	return nil
}

// ToSimParams overlays the configured fields onto sim.DefaultParams.
func (p ParamsConfig) ToSimParams() sim.Params {
	out := sim.DefaultParams()
	if p.LeagueWHIP != 0 {
		out.LeagueWHIP = p.LeagueWHIP
	}
	if p.WHIPWeight != 0 {
		out.WHIPWeight = p.WHIPWeight
	}
	if p.OnBaseFloor != 0 {
		out.OnBaseFloor = p.OnBaseFloor
	}
	if p.OnBaseCeil != 0 {
		out.OnBaseCeil = p.OnBaseCeil
	}
	if p.DefenseDivisor != 0 {
		out.DefenseDivisor = p.DefenseDivisor
	}
	if p.WalkRate != 0 {
		out.WalkRate = p.WalkRate
	}
	if p.SingleRate != 0 {
		out.SingleRate = p.SingleRate
	}
	if p.XBHRate != 0 {
		out.XBHRate = p.XBHRate
	}
	if p.TripleShare != 0 {
		out.TripleShare = p.TripleShare
	}
	if p.PowerScale != 0 {
		out.PowerScale = p.PowerScale
	}
	// Note: a zero fatigue_step is meaningful in theory, but our configs
	// tune it upward when they touch it at all.
	if p.FatigueStep != 0 {
		out.FatigueStep = p.FatigueStep
	}
	return out
}

type paramsFileWrapper struct {
	Params ParamsConfig `yaml:"params"`
}

func loadParamsFile(path string) (ParamsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParamsConfig{}, err
	}
	var w paramsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ParamsConfig{}, err
	}
	return w.Params, nil
}

// MergeParams overlays non-zero fields from override onto base.
// This is used when loading a params file and then applying overrides from
// the main config or a request.
func MergeParams(base, override ParamsConfig) ParamsConfig {
	out := base
	if override.LeagueWHIP != 0 {
		out.LeagueWHIP = override.LeagueWHIP
	}
	if override.WHIPWeight != 0 {
		out.WHIPWeight = override.WHIPWeight
	}
	if override.OnBaseFloor != 0 {
		out.OnBaseFloor = override.OnBaseFloor
	}
	if override.OnBaseCeil != 0 {
		out.OnBaseCeil = override.OnBaseCeil
	}
	if override.DefenseDivisor != 0 {
		out.DefenseDivisor = override.DefenseDivisor
	}
	if override.WalkRate != 0 {
		out.WalkRate = override.WalkRate
	}
	if override.SingleRate != 0 {
		out.SingleRate = override.SingleRate
	}
	if override.XBHRate != 0 {
		out.XBHRate = override.XBHRate
	}
	if override.TripleShare != 0 {
		out.TripleShare = override.TripleShare
	}
	if override.PowerScale != 0 {
		out.PowerScale = override.PowerScale
	}
	if override.FatigueStep != 0 {
		out.FatigueStep = override.FatigueStep
	}
	return out
}

// resolvePath interprets relative paths as relative to the config file
// directory when such a file exists, falling back to the path as given
// (relative to the working directory).
func resolvePath(cfgPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(filepath.Dir(cfgPath), p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}
