package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "soldefense.yaml"

// LoadSolDefense loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/soldefense.yaml -> ./configs/soldefense.yaml -> embedded default.
// Documents are decoded over the defaults, so a file only needs the keys it changes.
func LoadSolDefense(customPath string) (SolDefenseConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSolDefenseConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultSolDefenseConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultSolDefenseYAML)
	if err != nil {
		return DefaultSolDefenseConfig(), nil
	}
	return cfg, nil
}

func parse(data []byte) (SolDefenseConfig, error) {
	cfg := DefaultSolDefenseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SolDefenseConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySolDefensePreset adjusts lives and difficulty scaling for a preset.
// Normal and empty presets leave the config untouched.
func ApplySolDefensePreset(cfg *SolDefenseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Match.Lives = 5
		cfg.Difficulty.LevelStep = 0.15
	case DifficultyHard:
		cfg.Match.Lives = 2
		cfg.Difficulty.LevelStep = 0.35
		cfg.Difficulty.InitialLevel = 2
	case DifficultyFixed:
		// The multiplier stays at 1 for every level.
		cfg.Difficulty.LevelStep = 0
	}
}

// ApplyClassicRules switches to the classic tuning: a linear formation
// speed curve and bosses whose hover time and points ignore the level.
func ApplyClassicRules(cfg *SolDefenseConfig) {
	cfg.Difficulty.SpeedCurve = CurveLinear
	cfg.Boss.ScaleHover = false
	cfg.Boss.ScalePoints = false
}
