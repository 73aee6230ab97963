// Package config provides YAML-based game configuration loading and
// difficulty management for Sol Defense.
package config

import "fmt"

// SolDefenseConfig contains all tunables of the simulation.
type SolDefenseConfig struct {
	World      SolDefenseWorld      `yaml:"world"`
	Player     SolDefensePlayer     `yaml:"player"`
	Formation  SolDefenseFormation  `yaml:"formation"`
	Boss       SolDefenseBoss       `yaml:"boss"`
	Projectile SolDefenseProjectile `yaml:"projectiles"`
	Explosion  SolDefenseExplosion  `yaml:"explosions"`
	Match      SolDefenseMatch      `yaml:"match"`
	Starfield  SolDefenseStarfield  `yaml:"starfield"`
	Intro      SolDefenseIntro      `yaml:"intro"`
	Difficulty DifficultyConfig     `yaml:"difficulty"`
}

// SolDefenseWorld is the logical playfield. Every position and speed in the
// config is expressed in these units; frontends scale to their surface.
type SolDefenseWorld struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SolDefensePlayer defines the player ship.
type SolDefensePlayer struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	ColliderScale   float64 `yaml:"collider_scale"`
	Speed           float64 `yaml:"speed"` // px per 256 ms, both axes
	MoveLimitY      int     `yaml:"move_limit_y"`
	SpawnOffsetY    int     `yaml:"spawn_offset_y"` // gap between ship bottom and screen bottom
	FireCooldownMs  uint32  `yaml:"fire_cooldown_ms"`
	ShieldMs        uint32  `yaml:"shield_ms"`
	ShieldSize      int     `yaml:"shield_size"`
	NullifiedVolume float64 `yaml:"nullified_volume"`
}

// SolDefenseFormation defines the enemy grid and its movement.
type SolDefenseFormation struct {
	Rows              int     `yaml:"rows"`
	Columns           int     `yaml:"columns"`
	EnemySize         int     `yaml:"enemy_size"`
	OriginX           int     `yaml:"origin_x"`
	OriginY           int     `yaml:"origin_y"`
	SpeedX            float64 `yaml:"speed_x"`
	SpeedY            float64 `yaml:"speed_y"`
	ReturnSpeed       float64 `yaml:"return_speed"`
	EdgeMargin        int     `yaml:"edge_margin"`
	LimitY            int     `yaml:"limit_y"`
	Descent           float64 `yaml:"descent"`
	FireCooldownMinMs int     `yaml:"fire_cooldown_min_ms"`
	FireCooldownMaxMs int     `yaml:"fire_cooldown_max_ms"`
	Points            int     `yaml:"points"`
}

// SolDefenseBoss defines boss spawning and the three boss types.
type SolDefenseBoss struct {
	SpawnIntervalMs uint32             `yaml:"spawn_interval_ms"`
	MinEnemies      int                `yaml:"min_enemies"`
	BandTop         int                `yaml:"band_top"`
	BandBottom      int                `yaml:"band_bottom"`
	ScaleHover      bool               `yaml:"scale_hover"`
	ScalePoints     bool               `yaml:"scale_points"`
	Saucer          SolDefenseBossType `yaml:"saucer"`
	Spider          SolDefenseBossType `yaml:"spider"`
	Walker          SolDefenseBossType `yaml:"walker"`
}

// SolDefenseBossType holds per-type boss stats.
type SolDefenseBossType struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Speed   float64 `yaml:"speed"` // negative moves left
	HoverMs uint32  `yaml:"hover_ms"`
	Points  int     `yaml:"points"`
}

// SolDefenseProjectile defines both munition types.
type SolDefenseProjectile struct {
	PlayerWidth  int     `yaml:"player_width"`
	PlayerHeight int     `yaml:"player_height"`
	PlayerSpeed  float64 `yaml:"player_speed"` // negative moves up
	EnemyWidth   int     `yaml:"enemy_width"`
	EnemyHeight  int     `yaml:"enemy_height"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
}

// SolDefenseExplosion defines explosion sprites and lifetimes.
type SolDefenseExplosion struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	BigMs   uint32 `yaml:"big_ms"`
	SmallMs uint32 `yaml:"small_ms"`
}

// SolDefenseMatch defines lives, levels and banner durations.
type SolDefenseMatch struct {
	Lives       int     `yaml:"lives"`
	GetReadyMs  uint32  `yaml:"get_ready_ms"`
	SuccessMs   uint32  `yaml:"success_ms"`
	GameOverMs  uint32  `yaml:"game_over_ms"`
	MusicVolume float64 `yaml:"music_volume"`
}

// SolDefenseStarfield defines the parallax background and its warp effect.
type SolDefenseStarfield struct {
	Sections        int       `yaml:"sections"`
	StarsPerSection int       `yaml:"stars_per_section"`
	BlueSpeeds      []float64 `yaml:"blue_speeds"` // far, medium, close
	RedSpeeds       []float64 `yaml:"red_speeds"`
	WarpStep        float64   `yaml:"warp_step"`
	WarpStepMs      float64   `yaml:"warp_step_ms"`
	WarpMax         float64   `yaml:"warp_max"`
}

// SolDefenseIntro defines the title screen animation.
type SolDefenseIntro struct {
	LaserSpeed      float64 `yaml:"laser_speed"`
	LaserWidth      int     `yaml:"laser_width"`
	LaserHeight     int     `yaml:"laser_height"`
	BackgroundSpeed float64 `yaml:"background_speed"`
	BlinkMs         uint32  `yaml:"blink_ms"`
	MusicVolume     float64 `yaml:"music_volume"`
}

// DifficultyConfig defines how the level drives the difficulty multiplier
// and how the formation accelerates as it thins out.
type DifficultyConfig struct {
	InitialLevel int     `yaml:"initial_level"`
	LevelStep    float64 `yaml:"level_step"`  // multiplier = 1 + level*step
	SpeedCurve   string  `yaml:"speed_curve"` // "exponential" or "linear"
	SpeedFactor  float64 `yaml:"speed_factor"`
	SpeedSteps   int     `yaml:"speed_steps"` // thresholds across live/total
}

// Speed curves.
const (
	CurveExponential = "exponential"
	CurveLinear      = "linear"
)

// Validate reports configuration values the simulation cannot run with.
func (c SolDefenseConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	case c.Formation.Rows <= 0 || c.Formation.Columns <= 0:
		return fmt.Errorf("formation must have rows and columns, got %dx%d", c.Formation.Rows, c.Formation.Columns)
	case c.Formation.FireCooldownMinMs > c.Formation.FireCooldownMaxMs:
		return fmt.Errorf("formation fire cooldown range is inverted (%d > %d)",
			c.Formation.FireCooldownMinMs, c.Formation.FireCooldownMaxMs)
	case c.Match.Lives <= 0:
		return fmt.Errorf("match lives must be positive, got %d", c.Match.Lives)
	case c.Difficulty.SpeedSteps <= 0:
		return fmt.Errorf("difficulty speed_steps must be positive, got %d", c.Difficulty.SpeedSteps)
	case len(c.Starfield.BlueSpeeds) != 3 || len(c.Starfield.RedSpeeds) != 3:
		return fmt.Errorf("starfield needs three speeds per color")
	}
	switch c.Difficulty.SpeedCurve {
	case CurveExponential, CurveLinear:
	default:
		return fmt.Errorf("unknown speed curve %q", c.Difficulty.SpeedCurve)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}
