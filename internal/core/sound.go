package core

// Cue identifies a sound the game wants played.
type Cue int

const (
	CuePlayerShot Cue = iota
	CueShieldUp
	CueShieldNullified
	CueEnemyShot
	CueEnemyExplosion
	CuePlayerExplosion
	CueBossSpawn
	CueBossNullify
	CueBossEnhance
	CueMenuMusic
	CueGameMusic
)

// Cues lists every cue in declaration order.
var Cues = []Cue{
	CuePlayerShot, CueShieldUp, CueShieldNullified, CueEnemyShot,
	CueEnemyExplosion, CuePlayerExplosion, CueBossSpawn, CueBossNullify,
	CueBossEnhance, CueMenuMusic, CueGameMusic,
}

func (c Cue) String() string {
	switch c {
	case CuePlayerShot:
		return "player-shot"
	case CueShieldUp:
		return "shield-up"
	case CueShieldNullified:
		return "shield-nullified"
	case CueEnemyShot:
		return "enemy-shot"
	case CueEnemyExplosion:
		return "enemy-explosion"
	case CuePlayerExplosion:
		return "player-explosion"
	case CueBossSpawn:
		return "boss-spawn"
	case CueBossNullify:
		return "boss-nullify"
	case CueBossEnhance:
		return "boss-enhance"
	case CueMenuMusic:
		return "menu-music"
	case CueGameMusic:
		return "game-music"
	default:
		return "unknown"
	}
}

// SoundPlayer plays cues. Play is fire-and-forget; Loop starts a cue that
// repeats until Stop. Volume is linear in [0, 1].
type SoundPlayer interface {
	Play(c Cue, volume float64)
	Loop(c Cue, volume float64)
	Stop(c Cue)
}

// NopSound discards every cue.
type NopSound struct{}

func (NopSound) Play(Cue, float64) {}
func (NopSound) Loop(Cue, float64) {}
func (NopSound) Stop(Cue)          {}
