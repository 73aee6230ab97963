package soldefense

import (
	"github.com/vovakirdan/sol-defense/internal/core"
)

// Terminal glyphs.
const (
	glyphShip       = '▲'
	glyphShipBody   = '█'
	glyphEnemy      = '▓'
	glyphBoss       = '▀'
	glyphPlayerShot = '|'
	glyphEnemyShot  = '▼'
	glyphAimedShot  = '•'
	glyphLaser      = '░'
	glyphStarFar    = '.'
	glyphStarNear   = '*'
)

var (
	enemyRowColors = []core.Color{core.ColorMagenta, core.ColorBrightMagenta, core.ColorCyan, core.ColorBrightBlue, core.ColorGreen}
	bossColors     = []core.Color{core.ColorBrightRed, core.ColorBrightGreen, core.ColorOrange}
	explosionRunes = []rune{'@', '#', '*', '+', '·'}
)

// ScreenCanvas draws the logical playfield into a terminal cell buffer,
// scaling every rectangle down to cells.
type ScreenCanvas struct {
	dst            *core.Screen
	worldW, worldH int
}

// NewScreenCanvas maps a worldW x worldH field onto dst.
func NewScreenCanvas(dst *core.Screen, worldW, worldH int) *ScreenCanvas {
	return &ScreenCanvas{dst: dst, worldW: worldW, worldH: worldH}
}

func (c *ScreenCanvas) cellX(x int) int {
	return x * c.dst.Width() / c.worldW
}

func (c *ScreenCanvas) cellY(y int) int {
	return y * c.dst.Height() / c.worldH
}

// cells converts a logical rectangle to at least one cell.
func (c *ScreenCanvas) cells(r core.Rect) core.Rect {
	x0, y0 := c.cellX(r.X), c.cellY(r.Y)
	x1, y1 := c.cellX(r.Right()), c.cellY(r.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (c *ScreenCanvas) center(r core.Rect) (int, int) {
	return c.cellX(r.X + r.W/2), c.cellY(r.Y + r.H/2)
}

// DrawSprite draws s as glyphs.
func (c *ScreenCanvas) DrawSprite(s Sprite) {
	cell := c.cells(s.Dst)

	switch s.Tag {
	case TagShip:
		c.dst.DrawRect(cell, glyphShipBody, core.ColorBrightCyan)
		c.dst.SetColored(cell.X+cell.W/2, cell.Y, glyphShip, core.ColorBrightWhite)
	case TagShield:
		c.dst.DrawBox(cell, core.ColorBrightBlue)
	case TagEnemy:
		c.dst.DrawRect(cell, glyphEnemy, SpriteColor(s))
	case TagBoss:
		c.dst.DrawRect(cell, glyphBoss, SpriteColor(s))
	case TagPlayerShot:
		x, y := c.center(s.Dst)
		c.dst.SetColored(x, y, glyphPlayerShot, core.ColorBrightYellow)
	case TagEnemyShot:
		x, y := c.center(s.Dst)
		r := glyphEnemyShot
		if s.Variant == int(ProjectileDiagonal) {
			r = glyphAimedShot
		}
		c.dst.SetColored(x, y, r, core.ColorRed)
	case TagExplosion:
		r := explosionRunes[core.Min(s.Frame*len(explosionRunes)/31, len(explosionRunes)-1)]
		if s.Variant == 1 {
			c.dst.DrawRect(cell, r, core.ColorOrange)
			return
		}
		x, y := c.center(s.Dst)
		c.dst.SetColored(x, y, r, core.ColorYellow)
	case TagStar:
		x, y := c.center(s.Dst)
		r := glyphStarFar
		if StarDistance(s.Variant%len(starSizes)) == StarClose {
			r = glyphStarNear
		}
		if c.dst.Get(x, y) == ' ' {
			c.dst.SetColored(x, y, r, SpriteColor(s))
		}
	case TagLaser:
		c.dst.DrawRect(cell, glyphLaser, core.ColorRed)
	case TagTitle:
		c.dst.DrawBox(cell, core.ColorYellow)
		c.dst.DrawTextCentered(cell.Y+cell.H/2, "S O L   D E F E N S E", core.ColorBrightYellow)
	case TagNebula:
		// Terminals keep the background black.
	}
}

// DrawText draws a label at the scaled position.
func (c *ScreenCanvas) DrawText(x, y int, text string, style TextStyle) {
	row := c.cellY(y)
	if style.Centered {
		c.dst.DrawTextCentered(row, text, style.Color)
		return
	}
	c.dst.DrawTextColored(c.cellX(x), row, text, style.Color)
}

// SpriteColor is the flat color for frontends that draw s as a shape.
func SpriteColor(s Sprite) core.Color {
	switch s.Tag {
	case TagShip:
		return core.ColorBrightCyan
	case TagShield:
		return core.ColorBrightBlue
	case TagEnemy:
		return pick(enemyRowColors, s.Variant)
	case TagBoss:
		return pick(bossColors, s.Variant)
	case TagPlayerShot:
		return core.ColorBrightYellow
	case TagEnemyShot, TagLaser:
		return core.ColorRed
	case TagExplosion:
		if s.Variant == 1 {
			return core.ColorOrange
		}
		return core.ColorYellow
	case TagStar:
		if StarColor(s.Variant/len(starSizes)) == StarRed {
			return core.ColorDarkRed
		}
		return core.ColorBlue
	case TagTitle:
		return core.ColorBrightYellow
	case TagNebula:
		return core.ColorMagenta
	}
	return core.ColorDefault
}

func pick(colors []core.Color, i int) core.Color {
	if i < 0 {
		i = -i
	}
	return colors[i%len(colors)]
}
