package soldefense

import (
	"fmt"
	"hash/fnv"
)

// Point is an integer position in snapshots.
type Point struct {
	X, Y int
}

// Snapshot is a comparable summary of the simulation.
type Snapshot struct {
	Tick      uint32
	Scene     Scene
	Score     int
	Level     int
	Lives     int
	Phase     Phase
	Banner    Banner
	Ship      Point
	ShipAlive bool
	Shielded  bool
	Boss      BossState
	BossType  BossType
	BossPos   Point
	Enemies   []Point
	Shots     []Point
	Blasts    int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Tick: g.Now(), Scene: g.scene}
	m := g.match
	if m == nil || g.scene != SceneIngame {
		return s
	}

	s.Score, s.Level, s.Lives = m.score, m.level, m.lives
	s.Phase, s.Banner = m.phase, m.banner
	s.Ship = Point{int(m.ship.X), int(m.ship.Y)}
	s.ShipAlive = m.ship.Alive
	s.Shielded = m.ship.Shielded()
	s.Boss, s.BossType = m.boss.State, m.boss.Type
	if m.boss.Active() {
		s.BossPos = Point{int(m.boss.X), int(m.boss.Y)}
	}
	for _, e := range m.formation.Enemies().All() {
		s.Enemies = append(s.Enemies, Point{int(e.X), int(e.Y)})
	}
	for _, p := range m.projectiles.All() {
		s.Shots = append(s.Shots, Point{int(p.X), int(p.Y)})
	}
	s.Blasts = m.explosions.Len()
	return s
}

// Hash returns a hash of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%d;S:%d;P:%d:%d:%d;", s.Tick, s.Scene, s.Score, s.Level, s.Lives)
	fmt.Fprintf(h, "M:%d:%d;", s.Phase, s.Banner)
	fmt.Fprintf(h, "Sh:%d:%d:%v:%v;", s.Ship.X, s.Ship.Y, s.ShipAlive, s.Shielded)
	fmt.Fprintf(h, "B:%d:%d:%d:%d;", s.Boss, s.BossType, s.BossPos.X, s.BossPos.Y)

	fmt.Fprintf(h, "E:")
	for _, p := range s.Enemies {
		fmt.Fprintf(h, "%d,%d;", p.X, p.Y)
	}
	fmt.Fprintf(h, "J:")
	for _, p := range s.Shots {
		fmt.Fprintf(h, "%d,%d;", p.X, p.Y)
	}
	fmt.Fprintf(h, "X:%d", s.Blasts)

	return h.Sum64()
}
