package soldefense

import "github.com/vovakirdan/sol-defense/internal/core"

// Phase is the top-level state of a match.
type Phase int

const (
	PhaseNone Phase = iota
	PhasePlaying
	PhaseDeathCooldown
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDeathCooldown:
		return "death-cooldown"
	default:
		return "none"
	}
}

// World is what actors may see and do during an update. The match
// implements it; tests substitute their own.
type World interface {
	Now() uint32
	Rand() *core.RNG
	Bounds() (w, h int)
	Difficulty() float64
	Phase() Phase
	Play(c core.Cue, volume float64)

	PlayerPosition() (x, y float64)
	ShieldNullified() bool
	EnemiesAimAtPlayer() bool

	SpawnProjectile(p Projectile)
	EnemyDestroyed(cx, cy float64)
	PlayerDestroyed()

	OnAllEnemiesDead()
	OnFormationHome()
	OnBossLeave()
}
