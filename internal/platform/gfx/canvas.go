// Package gfx runs a game in a desktop window with Ebiten. Sprites are drawn
// as flat shapes in logical playfield coordinates; Ebiten scales the
// playfield to the window.
package gfx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/games/soldefense"
)

const (
	fontSize      = 28
	largeFontSize = 72
	explosionLife = 31
)

var backdrop = color.RGBA{R: 4, G: 4, B: 16, A: 255}

// Faces holds the fonts used for HUD text.
type Faces struct {
	Normal font.Face
	Large  font.Face
}

// LoadFaces parses the bundled Go Mono font at both HUD sizes.
func LoadFaces() (Faces, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return Faces{}, fmt.Errorf("parse font: %w", err)
	}
	normal, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return Faces{}, fmt.Errorf("font face: %w", err)
	}
	large, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    largeFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return Faces{}, fmt.Errorf("font face: %w", err)
	}
	return Faces{Normal: normal, Large: large}, nil
}

// Canvas implements soldefense.Canvas on an Ebiten image.
type Canvas struct {
	dst    *ebiten.Image
	pixel  *ebiten.Image
	faces  Faces
	worldW int
}

// NewCanvas creates a canvas for a playfield worldW units wide.
func NewCanvas(faces Faces, worldW int) *Canvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Canvas{pixel: pixel, faces: faces, worldW: worldW}
}

// Begin targets dst for the next frame and clears it.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	dst.Fill(backdrop)
}

func rgba(col core.Color, alpha uint8) color.RGBA {
	r, g, b := col.RGB()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

// fillRect draws r rotated by angle degrees around its center.
func (c *Canvas) fillRect(r core.Rect, angle float64, clr color.Color) {
	w, h := float64(r.W), float64(r.H)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle * math.Pi / 180)
	op.GeoM.Translate(float64(r.X)+w/2, float64(r.Y)+h/2)
	op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(c.pixel, op)
}

func center(r core.Rect) (float32, float32) {
	return float32(r.X) + float32(r.W)/2, float32(r.Y) + float32(r.H)/2
}

// DrawSprite draws s as a shape.
func (c *Canvas) DrawSprite(s soldefense.Sprite) {
	if c.dst == nil {
		return
	}
	col := soldefense.SpriteColor(s)
	cx, cy := center(s.Dst)
	w, h := float32(s.Dst.W), float32(s.Dst.H)

	switch s.Tag {
	case soldefense.TagShip:
		c.fillRect(s.Dst, s.Angle, rgba(col, 255))
		vector.DrawFilledRect(c.dst, cx-w/8, float32(s.Dst.Y)-h/4, w/4, h/4, rgba(core.ColorBrightWhite, 255), true)
	case soldefense.TagShield:
		vector.StrokeCircle(c.dst, cx, cy, max(w, h)/2, 4, rgba(col, 200), true)
	case soldefense.TagEnemy, soldefense.TagBoss:
		c.fillRect(s.Dst, s.Angle, rgba(col, 255))
	case soldefense.TagPlayerShot:
		c.fillRect(s.Dst, 0, rgba(col, 255))
	case soldefense.TagEnemyShot:
		if s.Variant == int(soldefense.ProjectileDiagonal) {
			vector.DrawFilledCircle(c.dst, cx, cy, max(w, h)/2, rgba(col, 255), true)
			return
		}
		c.fillRect(s.Dst, 0, rgba(col, 255))
	case soldefense.TagExplosion:
		life := float32(min(s.Frame, explosionLife)) / explosionLife
		alpha := uint8(255 * (1 - life))
		vector.DrawFilledCircle(c.dst, cx, cy, max(w, h)/2*(0.3+0.7*life), rgba(col, alpha), true)
	case soldefense.TagStar:
		vector.DrawFilledCircle(c.dst, cx, cy, max(w/2, 1), rgba(col, 255), false)
	case soldefense.TagLaser:
		c.fillRect(s.Dst, 0, rgba(col, 180))
	case soldefense.TagNebula:
		vector.DrawFilledRect(c.dst, float32(s.Dst.X), float32(s.Dst.Y), w, h, rgba(col, 24), false)
	case soldefense.TagTitle:
		vector.StrokeRect(c.dst, float32(s.Dst.X), float32(s.Dst.Y), w, h, 6, rgba(core.ColorYellow, 255), true)
		c.DrawText(0, s.Dst.Y+s.Dst.H/2, "SOL DEFENSE", soldefense.TextStyle{Color: col, Centered: true, Large: true})
	}
}

// DrawText draws a label with its baseline at y.
func (c *Canvas) DrawText(x, y int, s string, style soldefense.TextStyle) {
	if c.dst == nil {
		return
	}
	face := c.faces.Normal
	if style.Large {
		face = c.faces.Large
	}
	if face == nil {
		return
	}
	if style.Centered {
		x = (c.worldW - font.MeasureString(face, s).Round()) / 2
	}
	col := style.Color
	if col == core.ColorDefault {
		col = core.ColorWhite
	}
	text.Draw(c.dst, s, face, x, y, rgba(col, 255))
}
