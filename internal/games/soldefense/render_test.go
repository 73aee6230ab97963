package soldefense

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sol-defense/internal/core"
)

func TestScreenCanvasScaling(t *testing.T) {
	dst := core.NewScreen(80, 24)
	c := NewScreenCanvas(dst, 1920, 1080)

	// A 70x70 enemy at the origin covers 2x1 cells.
	c.DrawSprite(Sprite{Tag: TagEnemy, Dst: core.NewRect(0, 0, 70, 70)})
	if dst.Get(0, 0) != glyphEnemy || dst.Get(1, 0) != glyphEnemy {
		t.Errorf("row 0 = %q", dst.Row(0))
	}
	if dst.Get(2, 0) != ' ' {
		t.Errorf("enemy spilled into cell 2: %q", dst.Row(0))
	}

	// Tiny sprites still get one cell.
	c.DrawSprite(Sprite{Tag: TagPlayerShot, Dst: core.NewRect(960, 540, 21, 40)})
	if dst.Get(40, 12) != glyphPlayerShot {
		t.Errorf("shot not at (40, 12): %q", dst.Row(12))
	}
}

func TestScreenCanvasText(t *testing.T) {
	dst := core.NewScreen(80, 24)
	c := NewScreenCanvas(dst, 1920, 1080)

	c.DrawText(20, 20, "SCORE: 0", TextStyle{Color: core.ColorWhite})
	if !strings.HasPrefix(dst.Row(0), "SCORE: 0") {
		t.Errorf("row 0 = %q", dst.Row(0))
	}

	c.DrawText(0, 540, "GAME OVER", TextStyle{Color: core.ColorYellow, Centered: true})
	if got := strings.TrimSpace(dst.Row(12)); got != "GAME OVER" {
		t.Errorf("row 12 = %q", dst.Row(12))
	}
	if cell := dst.GetCell(40, 12); cell.Color != core.ColorYellow {
		t.Errorf("banner color = %v", cell.Color)
	}
}

func TestScreenCanvasStarsStayBehind(t *testing.T) {
	dst := core.NewScreen(80, 24)
	c := NewScreenCanvas(dst, 1920, 1080)

	c.DrawSprite(Sprite{Tag: TagEnemy, Dst: core.NewRect(0, 0, 70, 70)})
	c.DrawSprite(Sprite{Tag: TagStar, Dst: core.NewRect(0, 0, 12, 12)})
	if dst.Get(0, 0) != glyphEnemy {
		t.Error("a star overwrote an actor")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	startMatch(t, g)

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	out := dst.String()

	for _, s := range []string{"SCORE: 0", "LEVEL: 1", "SHIPS: 3", "GET READY!"} {
		if !strings.Contains(out, s) {
			t.Errorf("render lacks %q:\n%s", s, out)
		}
	}
	if strings.Count(out, string(glyphEnemy)) < 55 {
		t.Errorf("expected at least one cell per enemy:\n%s", out)
	}
	if !strings.ContainsRune(out, glyphShip) {
		t.Errorf("ship missing:\n%s", out)
	}
}

func TestGameRenderIntro(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 60; i++ {
		g.Step(frame())
	}

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), labelHitKey) {
		t.Errorf("intro render lacks the prompt:\n%s", dst.String())
	}
}

func TestSpriteColor(t *testing.T) {
	tests := []struct {
		name string
		s    Sprite
		want core.Color
	}{
		{"ship", Sprite{Tag: TagShip}, core.ColorBrightCyan},
		{"enemy row 0", Sprite{Tag: TagEnemy, Variant: 0}, core.ColorMagenta},
		{"enemy row wraps", Sprite{Tag: TagEnemy, Variant: 5}, core.ColorMagenta},
		{"boss spider", Sprite{Tag: TagBoss, Variant: 1}, core.ColorBrightGreen},
		{"big explosion", Sprite{Tag: TagExplosion, Variant: 1}, core.ColorOrange},
		{"small explosion", Sprite{Tag: TagExplosion}, core.ColorYellow},
		{"blue star", Sprite{Tag: TagStar, Variant: int(StarBlue) * len(starSizes)}, core.ColorBlue},
		{"red star", Sprite{Tag: TagStar, Variant: int(StarRed)*len(starSizes) + 2}, core.ColorDarkRed},
		{"laser", Sprite{Tag: TagLaser}, core.ColorRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpriteColor(tt.s); got != tt.want {
				t.Errorf("SpriteColor() = %v, expected %v", got, tt.want)
			}
		})
	}
}
