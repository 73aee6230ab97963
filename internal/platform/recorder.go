// Package platform holds what the terminal and window frontends share
// around a running game.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/registry"
	"github.com/vovakirdan/sol-defense/internal/settings"
	"github.com/vovakirdan/sol-defense/internal/storage"
)

// Recorder watches the state a game reports after each tick. It saves the
// score once per finished match and persists the scroll toggle. store and
// prefs may be nil.
type Recorder struct {
	game   registry.Game
	store  *storage.Store
	prefs  *settings.Manager
	player string
	saved  bool
}

// NewRecorder creates a recorder for game.
func NewRecorder(game registry.Game, store *storage.Store, prefs *settings.Manager, player string) *Recorder {
	return &Recorder{game: game, store: store, prefs: prefs, player: player}
}

// Observe handles the state returned by one Step.
func (r *Recorder) Observe(st core.GameState) {
	r.recordScore(st)
	r.persistScrolling()
}

// Saved reports whether the current finished match has been recorded.
func (r *Recorder) Saved() bool { return r.saved }

func (r *Recorder) recordScore(st core.GameState) {
	if !st.GameOver {
		r.saved = false
		return
	}
	if r.saved {
		return
	}
	r.saved = true
	if r.store == nil || st.Score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(r.game.ID(), r.player, st.Score, st.Level); err != nil {
		log.Warn("could not save score", "game", r.game.ID(), "err", err)
		return
	}
	log.Debug("score saved", "game", r.game.ID(), "player", r.player, "score", st.Score, "level", st.Level)
}

func (r *Recorder) persistScrolling() {
	s, ok := r.game.(registry.Scroller)
	if !ok || r.prefs == nil {
		return
	}
	if err := r.prefs.SetScrollingAndSave(s.Scrolling()); err != nil {
		log.Warn("could not save preferences", "err", err)
	}
}
