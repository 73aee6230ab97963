package soldefense

import (
	"github.com/vovakirdan/sol-defense/internal/config"
	"github.com/vovakirdan/sol-defense/internal/core"
)

// fakeWorld records what actors ask of the match.
type fakeWorld struct {
	now        uint32
	rng        *core.RNG
	w, h       int
	difficulty float64
	phase      Phase

	playerX, playerY float64
	nullified        bool
	aiming           bool

	projectiles  []Projectile
	cues         []core.Cue
	destroyed    int
	playerDeaths int
	allDead      int
	home         int
	bossLeft     int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		rng:        core.NewRNG(42),
		w:          1920,
		h:          1080,
		difficulty: 1,
		phase:      PhasePlaying,
		playerX:    899,
		playerY:    902,
	}
}

func (f *fakeWorld) Now() uint32                        { return f.now }
func (f *fakeWorld) Rand() *core.RNG                    { return f.rng }
func (f *fakeWorld) Bounds() (int, int)                 { return f.w, f.h }
func (f *fakeWorld) Difficulty() float64                { return f.difficulty }
func (f *fakeWorld) Phase() Phase                       { return f.phase }
func (f *fakeWorld) Play(c core.Cue, _ float64)         { f.cues = append(f.cues, c) }
func (f *fakeWorld) PlayerPosition() (float64, float64) { return f.playerX, f.playerY }
func (f *fakeWorld) ShieldNullified() bool              { return f.nullified }
func (f *fakeWorld) EnemiesAimAtPlayer() bool           { return f.aiming }
func (f *fakeWorld) SpawnProjectile(p Projectile)       { f.projectiles = append(f.projectiles, p) }
func (f *fakeWorld) EnemyDestroyed(_, _ float64)        { f.destroyed++ }
func (f *fakeWorld) PlayerDestroyed()                   { f.playerDeaths++ }
func (f *fakeWorld) OnAllEnemiesDead()                  { f.allDead++ }
func (f *fakeWorld) OnFormationHome()                   { f.home++ }
func (f *fakeWorld) OnBossLeave()                       { f.bossLeft++ }

func (f *fakeWorld) played(c core.Cue) int {
	n := 0
	for _, got := range f.cues {
		if got == c {
			n++
		}
	}
	return n
}

func testConfig() config.SolDefenseConfig {
	return config.DefaultSolDefenseConfig()
}

// recordCanvas collects draw calls.
type recordCanvas struct {
	sprites []Sprite
	texts   []string
}

func (r *recordCanvas) DrawSprite(s Sprite) { r.sprites = append(r.sprites, s) }

func (r *recordCanvas) DrawText(_, _ int, text string, _ TextStyle) {
	r.texts = append(r.texts, text)
}

func (r *recordCanvas) count(tag Tag) int {
	n := 0
	for _, s := range r.sprites {
		if s.Tag == tag {
			n++
		}
	}
	return n
}

func (r *recordCanvas) hasText(text string) bool {
	for _, t := range r.texts {
		if t == text {
			return true
		}
	}
	return false
}
