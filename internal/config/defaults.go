package config

import (
	_ "embed"
)

//go:embed defaults/soldefense.yaml
var defaultSolDefenseYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultSolDefenseYAML))
	copy(out, defaultSolDefenseYAML)
	return out
}

// DefaultSolDefenseConfig returns the built-in configuration. It mirrors the
// embedded YAML and is the last fallback when that cannot be parsed.
func DefaultSolDefenseConfig() SolDefenseConfig {
	return SolDefenseConfig{
		World: SolDefenseWorld{
			Width:  1920,
			Height: 1080,
		},
		Player: SolDefensePlayer{
			Width:           122,
			Height:          98,
			ColliderScale:   0.77,
			Speed:           72,
			MoveLimitY:      700,
			SpawnOffsetY:    80,
			FireCooldownMs:  500,
			ShieldMs:        1500,
			ShieldSize:      128,
			NullifiedVolume: 0.4,
		},
		Formation: SolDefenseFormation{
			Rows:              5,
			Columns:           11,
			EnemySize:         70,
			OriginX:           61,
			OriginY:           160,
			SpeedX:            8,
			SpeedY:            8,
			ReturnSpeed:       32,
			EdgeMargin:        60,
			LimitY:            600,
			Descent:           40,
			FireCooldownMinMs: 2000,
			FireCooldownMaxMs: 7000,
			Points:            70,
		},
		Boss: SolDefenseBoss{
			SpawnIntervalMs: 12000,
			MinEnemies:      8,
			BandTop:         60,
			BandBottom:      155,
			ScaleHover:      true,
			ScalePoints:     true,
			Saucer:          SolDefenseBossType{Width: 128, Height: 95, Speed: -45, HoverMs: 3000, Points: 500},
			Spider:          SolDefenseBossType{Width: 90, Height: 94, Speed: -42.5, HoverMs: 4000, Points: 750},
			Walker:          SolDefenseBossType{Width: 90, Height: 95, Speed: -40, HoverMs: 5000, Points: 1000},
		},
		Projectile: SolDefenseProjectile{
			PlayerWidth:  21,
			PlayerHeight: 40,
			PlayerSpeed:  -144,
			EnemyWidth:   55,
			EnemyHeight:  60,
			EnemySpeed:   110,
		},
		Explosion: SolDefenseExplosion{
			Width:   90,
			Height:  86,
			BigMs:   1654,
			SmallMs: 580,
		},
		Match: SolDefenseMatch{
			Lives:       3,
			GetReadyMs:  1000,
			SuccessMs:   1000,
			GameOverMs:  5000,
			MusicVolume: 0.2,
		},
		Starfield: SolDefenseStarfield{
			Sections:        2,
			StarsPerSection: 50,
			BlueSpeeds:      []float64{15, 30, 45},
			RedSpeeds:       []float64{17, 32, 47},
			WarpStep:        0.1,
			WarpStepMs:      20,
			WarpMax:         12,
		},
		Intro: SolDefenseIntro{
			LaserSpeed:      -640,
			LaserWidth:      623,
			LaserHeight:     1080,
			BackgroundSpeed: -36,
			BlinkMs:         64,
			MusicVolume:     0.75,
		},
		Difficulty: DifficultyConfig{
			InitialLevel: 1,
			LevelStep:    0.25,
			SpeedCurve:   CurveExponential,
			SpeedFactor:  1.68,
			SpeedSteps:   10,
		},
	}
}
