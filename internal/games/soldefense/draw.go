package soldefense

import "github.com/vovakirdan/sol-defense/internal/core"

// Sheet names a sprite sheet owned by the frontend.
type Sheet int

const (
	SheetGame Sheet = iota
	SheetEnemies
	SheetStarfield
	SheetIntro
)

// Tag tells a frontend what a sprite depicts, for frontends that draw
// shapes or glyphs instead of sampling the sheet.
type Tag int

const (
	TagShip Tag = iota
	TagShield
	TagEnemy
	TagBoss
	TagPlayerShot
	TagEnemyShot
	TagExplosion
	TagStar
	TagNebula
	TagLaser
	TagTitle
)

// Sprite is one blit request. Src is the frame in the sheet, Dst the
// destination in logical playfield coordinates. Angle rotates the sprite
// around the center of Dst, in degrees. Variant refines the tag (enemy row,
// boss type, star color).
type Sprite struct {
	Sheet   Sheet
	Tag     Tag
	Variant int
	Frame   int
	Src     core.Rect
	Dst     core.Rect
	Angle   float64
}

// TextStyle describes a HUD label.
type TextStyle struct {
	Color    core.Color
	Centered bool // x is ignored and the text is centered horizontally
	Large    bool
}

// Canvas is implemented by frontends. All coordinates are logical.
type Canvas interface {
	DrawSprite(s Sprite)
	DrawText(x, y int, text string, style TextStyle)
}

// drawAnimated emits the current frame of anim at the entity's bounds.
func drawAnimated(c Canvas, sheet Sheet, tag Tag, variant int, anim *Animator, e *Entity, angle float64) {
	src, ok := anim.Source()
	if !ok {
		return
	}
	c.DrawSprite(Sprite{
		Sheet:   sheet,
		Tag:     tag,
		Variant: variant,
		Frame:   anim.Frame(),
		Src:     src,
		Dst:     e.Bounds(),
		Angle:   angle,
	})
}
