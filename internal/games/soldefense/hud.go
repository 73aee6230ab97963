package soldefense

import (
	"strconv"

	"github.com/vovakirdan/sol-defense/internal/core"
)

// Banner is the message shown across the playfield.
type Banner int

const (
	BannerNone Banner = iota
	BannerGetReady
	BannerMissionSuccessful
	BannerGameOver
)

func (b Banner) String() string {
	switch b {
	case BannerGetReady:
		return "GET READY!"
	case BannerMissionSuccessful:
		return "MISSION SUCCESSFUL, GET READY!"
	case BannerGameOver:
		return "GAME OVER"
	default:
		return ""
	}
}

const (
	labelShieldNullified = "SHIELD NULLIFIED!"
	labelEnemiesEnhanced = "ENEMIES ENHANCED!"
)

// hudLabel caches the text of a numeric label.
type hudLabel struct {
	prefix string
	value  int
	text   string
}

// set rebuilds the text only when the value changed. It reports whether
// a rebuild happened.
func (l *hudLabel) set(v int) bool {
	if l.text != "" && l.value == v {
		return false
	}
	l.value = v
	l.text = l.prefix + strconv.Itoa(v)
	return true
}

type hud struct {
	score hudLabel
	level hudLabel
	ships hudLabel

	rebuilds int
}

func newHUD() *hud {
	return &hud{
		score: hudLabel{prefix: "SCORE: "},
		level: hudLabel{prefix: "LEVEL: "},
		ships: hudLabel{prefix: "SHIPS: "},
	}
}

func (h *hud) refresh(score, level, ships int) {
	for _, r := range []bool{h.score.set(score), h.level.set(level), h.ships.set(ships)} {
		if r {
			h.rebuilds++
		}
	}
}

func (h *hud) draw(c Canvas, width, height int, warning string, banner Banner) {
	white := TextStyle{Color: core.ColorWhite}
	c.DrawText(20, 20, h.score.text, white)
	c.DrawText(width/2-100, 20, h.level.text, white)
	c.DrawText(width-300, 20, h.ships.text, white)

	if warning != "" {
		c.DrawText(0, 80, warning, TextStyle{Color: core.ColorRed, Centered: true})
	}
	if banner != BannerNone {
		c.DrawText(0, height/2, banner.String(), TextStyle{Color: core.ColorYellow, Centered: true, Large: true})
	}
}
