package soldefense

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sol-defense/internal/config"
	"github.com/vovakirdan/sol-defense/internal/core"
)

var logger = log.New(io.Discard)

// SetLogger routes simulation logs to l. Nil restores the discard logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Match runs one game from the first wave to game over. It owns every actor
// collection and is the World its actors see.
type Match struct {
	cfg        config.SolDefenseConfig
	difficulty *config.DifficultyManager
	clock      core.Clock
	rng        *core.RNG
	sounds     core.SoundPlayer

	starfield   *Starfield
	ship        *Ship
	formation   *Formation
	boss        *Boss
	projectiles *Arena[Projectile]
	explosions  *Arena[Explosion]
	hud         *hud

	phase          Phase
	requestedPhase Phase

	banner          Banner
	requestedBanner Banner
	bannerPending   bool
	bannerStart     uint32

	score int
	level int
	lives int

	lastBossSpawn uint32
	wavesCleared  int
	finished      bool
}

// NewMatch builds a match. Call Start before the first Update.
func NewMatch(cfg config.SolDefenseConfig, clock core.Clock, rng *core.RNG, sounds core.SoundPlayer) *Match {
	if sounds == nil {
		sounds = core.NopSound{}
	}
	dm := config.NewDifficultyManager(cfg.Difficulty)
	w, h := cfg.World.Width, cfg.World.Height

	m := &Match{
		cfg:         cfg,
		difficulty:  dm,
		clock:       clock,
		rng:         rng,
		sounds:      sounds,
		starfield:   NewStarfield(cfg.Starfield, rng, w, h),
		ship:        NewShip(cfg.Player, cfg.Projectile, w, h),
		formation:   NewFormation(cfg.Formation, cfg.Projectile, dm),
		boss:        NewBoss(cfg.Boss),
		projectiles: NewArena[Projectile](64),
		explosions:  NewArena[Explosion](16),
		hud:         newHUD(),
	}
	m.boss.OnStateChange = func(from, to BossState) {
		logger.Debug("boss state", "type", m.boss.Type, "from", from, "to", to)
	}
	return m
}

// Start resets score, level and lives and sends in the first wave.
func (m *Match) Start() {
	m.score = 0
	m.level = m.difficulty.InitialLevel()
	m.lives = m.cfg.Match.Lives
	m.finished = false
	m.wavesCleared = 0

	m.phase, m.requestedPhase = PhaseNone, PhaseNone
	m.banner, m.bannerPending = BannerNone, false

	m.projectiles.Clear()
	m.explosions.Clear()
	m.boss.Despawn()
	m.ship.Respawn()
	m.formation.Spawn(m)
	m.lastBossSpawn = m.Now()

	m.requestPhase(PhasePlaying)
	m.requestBanner(BannerGetReady)
	m.hud.refresh(m.score, m.level, m.lives)
	m.sounds.Loop(core.CueGameMusic, m.cfg.Match.MusicVolume)

	logger.Info("match started", "level", m.level, "lives", m.lives)
}

func (m *Match) requestPhase(p Phase) {
	if p == m.phase {
		panic(fmt.Sprintf("soldefense: phase %s requested while already active", p))
	}
	m.requestedPhase = p
}

func (m *Match) requestBanner(b Banner) {
	if b == m.banner && b != BannerNone {
		panic(fmt.Sprintf("soldefense: banner %q requested while already shown", b))
	}
	m.requestedBanner = b
	m.bannerPending = true
}

// Update runs one frame of the pipeline.
func (m *Match) Update(elapsed uint32, controls Controls) {
	now := m.Now()

	if m.requestedPhase != PhaseNone {
		logger.Debug("phase", "from", m.phase, "to", m.requestedPhase)
		m.phase = m.requestedPhase
		m.requestedPhase = PhaseNone
	}
	if m.bannerPending {
		m.banner = m.requestedBanner
		m.bannerStart = now
		m.bannerPending = false
	}

	if m.phase != PhasePlaying && m.phase != PhaseDeathCooldown {
		return
	}

	m.starfield.Update(now, elapsed)

	m.ship.SetControls(controls)
	m.ship.Update(m, elapsed)

	m.formation.Update(m, m.ship, elapsed)
	m.maybeSpawnBoss(now)

	m.boss.Update(m, elapsed)
	m.updateProjectiles(now, elapsed)
	m.updateExplosions(now)

	m.hud.refresh(m.score, m.level, m.lives)
	m.expireBanner(now)

	if m.phase == PhaseDeathCooldown && m.requestedPhase != PhasePlaying && !m.starfield.Animating() {
		m.ship.Respawn()
		m.requestPhase(PhasePlaying)
		logger.Debug("player respawned", "lives", m.lives)
	}

	if m.formation.Live() == 0 && !m.boss.Active() && m.lives > 0 {
		m.completeLevel(now)
	}
}

func (m *Match) maybeSpawnBoss(now uint32) {
	if m.phase != PhasePlaying || m.boss.Active() {
		return
	}
	if m.formation.Live() < m.cfg.Boss.MinEnemies || now-m.lastBossSpawn <= m.cfg.Boss.SpawnIntervalMs {
		return
	}
	m.boss.Spawn(m, BossRandom)
	m.lastBossSpawn = now
	logger.Info("boss spawned", "type", m.boss.Type, "level", m.level)
}

// SpawnBoss forces a boss of type t in. It is ignored while one is active.
func (m *Match) SpawnBoss(t BossType) {
	if m.boss.Active() {
		return
	}
	m.boss.Spawn(m, t)
	m.lastBossSpawn = m.Now()
	logger.Info("boss spawned", "type", m.boss.Type, "forced", true)
}

func (m *Match) updateProjectiles(now, elapsed uint32) {
	width, height := m.Bounds()
	for h := m.projectiles.First(); h != NilHandle; {
		p := m.projectiles.Get(h)
		p.Update(now, elapsed, width, height)
		if p.Alive {
			switch p.Owner {
			case OwnerPlayer:
				m.resolvePlayerShot(p, now)
			case OwnerEnemy:
				m.resolveEnemyShot(p)
			}
		}
		if !p.Alive {
			h = m.projectiles.Remove(h)
			continue
		}
		h = m.projectiles.Next(h)
	}
}

func (m *Match) resolvePlayerShot(p *Projectile, now uint32) {
	enemies := m.formation.Enemies()
	for h := enemies.First(); h != NilHandle; h = enemies.Next(h) {
		e := enemies.Get(h)
		if !p.CollidesWith(&e.Entity) {
			continue
		}
		cx, cy := e.Center()
		m.formation.Kill(h, m)
		m.EnemyDestroyed(cx, cy)
		p.OnCollision()
		break
	}

	if m.boss.Active() && p.CollidesWith(&m.boss.Entity) {
		cx, cy := m.boss.Center()
		points := m.boss.Points()
		logger.Info("boss destroyed", "type", m.boss.Type, "points", points)
		m.boss.Despawn()
		m.explosions.Insert(newExplosion(m.cfg.Explosion, true, cx, cy, now))
		m.sounds.Play(core.CuePlayerExplosion, 1)
		m.score += points
		m.lastBossSpawn = now
		p.OnCollision()
	}
}

func (m *Match) resolveEnemyShot(p *Projectile) {
	if !m.ship.Alive || !p.CollidesWith(&m.ship.Entity) {
		return
	}
	p.OnCollision()
	if !m.ship.Shielded() {
		m.PlayerDestroyed()
	}
}

func (m *Match) updateExplosions(now uint32) {
	for h := m.explosions.First(); h != NilHandle; {
		e := m.explosions.Get(h)
		e.Update(now)
		if !e.Alive {
			h = m.explosions.Remove(h)
			continue
		}
		h = m.explosions.Next(h)
	}
}

func (m *Match) expireBanner(now uint32) {
	if m.banner == BannerNone || m.bannerPending {
		return
	}
	if now-m.bannerStart <= m.bannerDuration(m.banner) {
		return
	}
	if m.banner == BannerGameOver {
		m.finished = true
		logger.Info("match over", "score", m.score, "level", m.level)
	}
	m.banner = BannerNone
}

func (m *Match) bannerDuration(b Banner) uint32 {
	switch b {
	case BannerGetReady:
		return m.cfg.Match.GetReadyMs
	case BannerMissionSuccessful:
		return m.cfg.Match.SuccessMs
	case BannerGameOver:
		return m.cfg.Match.GameOverMs
	default:
		return 0
	}
}

func (m *Match) completeLevel(now uint32) {
	m.level++
	m.requestBanner(BannerMissionSuccessful)
	m.formation.Spawn(m)
	m.lastBossSpawn = now
	logger.Info("level complete", "level", m.level, "score", m.score)
}

// Now returns the current tick count.
func (m *Match) Now() uint32 { return m.clock.Ticks() }

// Rand returns the match's random source.
func (m *Match) Rand() *core.RNG { return m.rng }

// Bounds returns the logical playfield size.
func (m *Match) Bounds() (int, int) { return m.cfg.World.Width, m.cfg.World.Height }

// Difficulty returns the multiplier for the current level.
func (m *Match) Difficulty() float64 { return m.difficulty.Multiplier(m.level) }

// Phase returns the active phase.
func (m *Match) Phase() Phase { return m.phase }

// Play forwards a sound cue.
func (m *Match) Play(c core.Cue, volume float64) { m.sounds.Play(c, volume) }

// PlayerPosition returns the ship's top-left corner.
func (m *Match) PlayerPosition() (float64, float64) { return m.ship.X, m.ship.Y }

// ShieldNullified reports whether a boss blocks the shield.
func (m *Match) ShieldNullified() bool { return m.boss.NullifiesShield() }

// EnemiesAimAtPlayer reports whether a boss makes enemies aim.
func (m *Match) EnemiesAimAtPlayer() bool { return m.boss.AimsEnemyFire() }

// SpawnProjectile adds a shot to the playfield.
func (m *Match) SpawnProjectile(p Projectile) { m.projectiles.Insert(p) }

// EnemyDestroyed awards the kill and leaves an explosion at (cx, cy). The
// enemy itself has already been removed from the formation.
func (m *Match) EnemyDestroyed(cx, cy float64) {
	m.explosions.Insert(newExplosion(m.cfg.Explosion, false, cx, cy, m.Now()))
	m.sounds.Play(core.CueEnemyExplosion, 1)
	m.score += m.cfg.Formation.Points
}

// PlayerDestroyed kills the ship and books the lost life.
func (m *Match) PlayerDestroyed() {
	now := m.Now()
	cx, cy := m.ship.Center()
	m.ship.Alive = false
	m.explosions.Insert(newExplosion(m.cfg.Explosion, true, cx, cy, now))
	m.sounds.Play(core.CuePlayerExplosion, 1)

	if m.lives > 0 {
		m.lives--
	}
	logger.Info("player destroyed", "lives", m.lives)

	if m.lives == 0 {
		if m.banner != BannerGameOver && !(m.bannerPending && m.requestedBanner == BannerGameOver) {
			m.requestBanner(BannerGameOver)
		}
		return
	}
	m.starfield.StartAnimation(now)
	if m.phase != PhaseDeathCooldown && m.requestedPhase != PhaseDeathCooldown {
		m.requestPhase(PhaseDeathCooldown)
	}
}

// OnAllEnemiesDead records a cleared wave. The level advances in Update
// once the boss is gone as well.
func (m *Match) OnAllEnemiesDead() {
	m.wavesCleared++
	logger.Debug("wave cleared", "level", m.level)
}

// OnFormationHome is called once the formation is back in place during
// the death cooldown.
func (m *Match) OnFormationHome() {
	logger.Debug("formation home")
}

// OnBossLeave restarts the boss cooldown after a boss flew off.
func (m *Match) OnBossLeave() {
	m.lastBossSpawn = m.Now()
	logger.Debug("boss left", "type", m.boss.Type)
}

// Finished reports whether the game-over banner has run its course.
func (m *Match) Finished() bool { return m.finished }

// Score returns the current score.
func (m *Match) Score() int { return m.score }

// Level returns the current level.
func (m *Match) Level() int { return m.level }

// Lives returns the remaining lives.
func (m *Match) Lives() int { return m.lives }

// Banner returns the banner on screen.
func (m *Match) Banner() Banner { return m.banner }

// WavesCleared returns how many waves were wiped out this match.
func (m *Match) WavesCleared() int { return m.wavesCleared }

// Ship returns the player ship.
func (m *Match) Ship() *Ship { return m.ship }

// Formation returns the enemy formation.
func (m *Match) Formation() *Formation { return m.formation }

// Boss returns the boss slot.
func (m *Match) Boss() *Boss { return m.boss }

// Projectiles returns the shots in flight.
func (m *Match) Projectiles() *Arena[Projectile] { return m.projectiles }

// Explosions returns the running explosions.
func (m *Match) Explosions() *Arena[Explosion] { return m.explosions }

// Starfield returns the background.
func (m *Match) Starfield() *Starfield { return m.starfield }

func (m *Match) warning() string {
	switch {
	case m.boss.NullifiesShield():
		return labelShieldNullified
	case m.boss.AimsEnemyFire():
		return labelEnemiesEnhanced
	default:
		return ""
	}
}

// Draw renders the playfield back to front.
func (m *Match) Draw(c Canvas) {
	m.starfield.Draw(c)
	m.formation.Draw(c)
	m.boss.Draw(c)
	for _, p := range m.projectiles.All() {
		p.Draw(c)
	}
	m.ship.Draw(c)
	for _, e := range m.explosions.All() {
		e.Draw(c)
	}
	w, h := m.Bounds()
	m.hud.draw(c, w, h, m.warning(), m.banner)
}
