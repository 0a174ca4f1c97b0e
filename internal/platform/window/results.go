package window

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/storage"
)

// resultSaver stores finished games.
type resultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// scoreKeeper watches the state after every step and saves each finished
// game once. A restart arms it again.
type scoreKeeper struct {
	store  resultSaver
	logger *log.Logger
	saved  bool
}

func newScoreKeeper(store *storage.Store, logger *log.Logger) *scoreKeeper {
	k := &scoreKeeper{logger: logger}
	if store != nil {
		k.store = store
	}
	return k
}

// observe handles the transition from prev to cur and reports whether a
// result was written. Zero scores are not stored.
func (k *scoreKeeper) observe(game registry.Game, prev, cur core.GameState) bool {
	if prev.GameOver && !cur.GameOver {
		k.saved = false
	}
	if !cur.GameOver || k.saved {
		return false
	}
	k.saved = true

	k.logger.Info("game over", "game", game.ID(), "score", cur.Score)
	if k.store == nil || cur.Score == 0 {
		return false
	}
	if _, err := k.store.SaveResult(resultOf(game, cur)); err != nil {
		k.logger.Warn("could not save score", "error", err)
		return false
	}
	return true
}

// resultOf describes a finished game, with statistics when the game reports them.
func resultOf(game registry.Game, st core.GameState) storage.Result {
	r := storage.Result{GameID: game.ID(), Score: st.Score}
	if s, ok := game.(interface {
		Cleared() int
		MaxChain() int
		Ticks() uint64
	}); ok {
		r.Cleared, r.MaxChain, r.Ticks = s.Cleared(), s.MaxChain(), int(s.Ticks())
	}
	return r
}
