package config

import "math"

// DifficultyManager derives the level multiplier and the formation speed curve.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.SpeedSteps <= 0 {
		cfg.SpeedSteps = 10
	}
	return &DifficultyManager{cfg: cfg}
}

// InitialLevel returns the level a new match starts at (at least 1).
func (d *DifficultyManager) InitialLevel() int {
	if d.cfg.InitialLevel < 1 {
		return 1
	}
	return d.cfg.InitialLevel
}

// Multiplier returns 1 + level*step. It scales enemy and boss speed and
// boss stats, and never drops below 1.
func (d *DifficultyManager) Multiplier(level int) float64 {
	return math.Max(1, 1+float64(level)*d.cfg.LevelStep)
}

// Altitude returns how many tenths (for the default 10 steps) of the wave are
// still alive, rounded up: ceil(live*steps/total). Integer arithmetic keeps
// exact thresholds exact.
func (d *DifficultyManager) Altitude(live, total int) int {
	if total <= 0 || live <= 0 {
		return 0
	}
	if live > total {
		live = total
	}
	steps := d.cfg.SpeedSteps
	return (live*steps + total - 1) / total
}

// FormationSpeed returns the formation speed factor for live/total before the
// level multiplier: 1 at full altitude, then factor^n (exponential curve) or
// factor*n (linear curve) where n is the number of thresholds crossed.
func (d *DifficultyManager) FormationSpeed(live, total int) float64 {
	n := d.cfg.SpeedSteps - d.Altitude(live, total)
	if n <= 0 {
		return 1
	}
	if d.cfg.SpeedCurve == CurveLinear {
		return math.Max(1, d.cfg.SpeedFactor*float64(n))
	}
	return math.Pow(d.cfg.SpeedFactor, float64(n))
}
