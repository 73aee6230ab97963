package soldefense

import "github.com/vovakirdan/sol-defense/internal/core"

// PlayMode selects what happens when a clip runs past an end frame.
type PlayMode int

const (
	PlayOnce      PlayMode = iota // hold the last frame
	PlayLoop                      // wrap to frame 0
	PlayBoomerang                 // bounce between the end frames
)

// Clip describes one animation strip in a sprite sheet. Frames are laid out
// horizontally starting at (X, Y).
type Clip struct {
	X, Y    int
	Frames  int
	FrameMs uint32
	Mode    PlayMode
}

// NoClip marks the absence of a current or requested clip.
const NoClip = -1

// Animator selects the frame of a clip to draw. Progression is driven by the
// tick source, so the frame shown depends on elapsed time, not call count.
type Animator struct {
	clips     []Clip
	frameW    int
	frameH    int
	current   int
	requested int
	frame     int
	dir       int
	last      uint32
}

// NewAnimator returns an animator over clips with frames of frameW x frameH.
// Nothing plays until a clip is requested and Update runs.
func NewAnimator(clips []Clip, frameW, frameH int) Animator {
	return Animator{
		clips:     clips,
		frameW:    frameW,
		frameH:    frameH,
		current:   NoClip,
		requested: NoClip,
		dir:       1,
	}
}

// Request queues a clip switch for the next Update. Asking for the clip that
// is already playing or already queued does nothing, so callers may request
// every frame without restarting the animation.
func (a *Animator) Request(idx int) {
	if idx == a.current || idx == a.requested {
		return
	}
	if idx < 0 || idx >= len(a.clips) {
		panic("soldefense: animation clip out of range")
	}
	a.requested = idx
}

// Update applies a pending request and advances at most one frame.
func (a *Animator) Update(now uint32) {
	if a.requested != NoClip {
		a.current = a.requested
		a.requested = NoClip
		a.frame = 0
		a.dir = 1
		a.last = now
		return
	}
	if a.current == NoClip {
		return
	}

	clip := a.clips[a.current]
	if now-a.last <= clip.FrameMs {
		return
	}
	a.last = now
	a.frame += a.dir

	if a.frame >= 0 && a.frame < clip.Frames {
		return
	}
	switch clip.Mode {
	case PlayLoop:
		a.frame = 0
	case PlayBoomerang:
		if clip.Frames < 2 {
			a.frame = 0
			return
		}
		if a.frame < 0 {
			a.frame = 1
		} else {
			a.frame = clip.Frames - 2
		}
		a.dir = -a.dir
	default:
		a.frame = clip.Frames - 1
	}
}

// Frame returns the frame index within the current clip.
func (a *Animator) Frame() int { return a.frame }

// Current returns the playing clip index, or NoClip.
func (a *Animator) Current() int { return a.current }

// Source returns the sheet rectangle of the current frame.
func (a *Animator) Source() (core.Rect, bool) {
	if a.current == NoClip {
		return core.Rect{}, false
	}
	clip := a.clips[a.current]
	return core.NewRect(clip.X+a.frame*a.frameW, clip.Y, a.frameW, a.frameH), true
}
