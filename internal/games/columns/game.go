// Package columns implements the falling-columns rules: a three-jewel
// column drops into a well, runs of three or more equal jewels flash, fade
// out and clear, and the jewels above fall into the gaps.
package columns

import (
	"math/rand"

	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/render"
)

// Mode selects how matched jewels fade out.
type Mode int

const (
	ModeWave    Mode = iota // Each matched jewel fades to gray in a diagonal sweep
	ModeClassic             // All matched jewels fade out together
)

// Phase is the state of the game loop.
type Phase int

const (
	PhaseFalling  Phase = iota // A column is under player control
	PhaseFlash                 // Matched jewels shown white
	PhaseFade                  // Matched jewels fading out
	PhaseGameOver              // A new column could not be placed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseFlash:
		return "flash"
	case PhaseFade:
		return "fade"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// gameConfig is the configuration applied by Reset, set via SetConfig.
var gameConfig = config.Default()

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.Config) {
	gameConfig = cfg
}

// Game implements the columns rules.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	cfg        config.GameConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	board   *board.Board
	falling board.Column
	next    board.Column

	phase       Phase
	phaseTick   int // Ticks spent in the current flash/fade phase
	gravityTick int // Ticks since the falling column last moved down
	sinceSpawn  int // Ticks since the current column spawned
	matches     render.MatchSet
	chain       int // Consecutive clears caused by one lock
	maxChain    int

	tick      uint64
	score     int
	highScore int
	cleared   int // Total jewels cleared this game
	paused    bool
}

// New creates a game whose matches fade out in a diagonal wave.
func New() *Game {
	return &Game{mode: ModeWave}
}

// NewClassic creates a game whose matches fade out together.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register("columns", func() registry.Game {
		return New()
	})
	registry.Register("columns_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "columns_classic"
	}
	return "columns"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Columns (Classic)"
	}
	return "Columns"
}

// Reset initializes/restarts the game. The high score survives restarts.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.cfg = gameConfig.Game
	g.difficulty = config.NewDifficultyManager(gameConfig.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))

	g.board = board.New(g.cfg.BoardWidth, g.cfg.BoardHeight)
	g.phase = PhaseFalling
	g.phaseTick = 0
	g.matches = nil
	g.chain = 0
	g.maxChain = 0
	g.tick = 0
	g.highScore = max(g.highScore, g.score)
	g.score = 0
	g.cleared = 0
	g.paused = false

	g.next = g.randomColumn()
	g.spawn()
}

// restart begins a new game seeded from the finished one, so the jewel
// sequence changes while a recorded run still replays identically.
func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = g.rng.Int63()
	g.Reset(rc)
}

// SetHighScore sets the best score shown on the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the best of the stored high score and the current score.
func (g *Game) HighScore() int {
	return max(g.highScore, g.score)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.sinceSpawn++

	cleared := 0
	switch g.phase {
	case PhaseFalling:
		g.stepFalling(in)
	case PhaseFlash:
		g.phaseTick++
		if g.phaseTick >= g.cfg.FlashTicks {
			g.phase = PhaseFade
			g.phaseTick = 0
		}
	case PhaseFade:
		g.phaseTick++
		if g.phaseTick >= g.fadeDuration() {
			cleared = g.resolve()
		}
	}

	return core.StepResult{State: g.State(), Cleared: cleared}
}

// stepFalling applies player input, then gravity.
func (g *Game) stepFalling(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.tryMove(-1)
	}
	if in.Has(core.ActionRight) {
		g.tryMove(1)
	}
	if in.Has(core.ActionRotate) {
		g.falling = g.falling.Rotate()
	}

	if in.Has(core.ActionDrop) {
		g.gravityTick = 0
		g.fall()
		return
	}

	g.gravityTick++
	if g.gravityTick >= g.DropInterval() {
		g.gravityTick = 0
		g.fall()
	}
}

func (g *Game) tryMove(dx int) {
	if moved := g.falling.Moved(dx, 0); g.fits(moved) {
		g.falling = moved
	}
}

// fall moves the column down one row, locking it when it lands.
func (g *Game) fall() {
	if down := g.falling.Moved(0, -1); g.fits(down) {
		g.falling = down
		return
	}
	g.lock()
}

// fits reports whether every cell of col is inside the well and empty.
func (g *Game) fits(col board.Column) bool {
	for _, c := range col.Cells() {
		if !g.board.InBounds(c) || g.board.Occupied(c) {
			return false
		}
	}
	return true
}

// lock settles the falling column and starts clearing any matches.
func (g *Game) lock() {
	cells := g.falling.Cells()
	for i, c := range cells {
		g.board.Set(c, g.falling.Jewels[i])
	}

	g.chain = 0
	g.checkMatches()
}

// checkMatches starts a flash for the next link of the chain, or spawns the
// next column when the board is stable.
func (g *Game) checkMatches() {
	g.matches = FindMatches(g.board)
	if len(g.matches) == 0 {
		g.matches = nil
		g.chain = 0
		g.spawn()
		return
	}

	g.chain++
	g.maxChain = max(g.maxChain, g.chain)
	g.phase = PhaseFlash
	g.phaseTick = 0
	if g.cfg.FlashTicks <= 0 {
		g.phase = PhaseFade
	}
}

// resolve removes the faded jewels, scores them and collapses the well.
func (g *Game) resolve() int {
	n := ClearMatches(g.board, g.matches)
	g.cleared += n
	g.score += g.cfg.PointsPerJewel * n * g.chain
	g.board.Collapse()
	g.checkMatches()
	return n
}

// fadeDuration is the length of the fade phase for the current matches.
func (g *Game) fadeDuration() int {
	if g.mode == ModeClassic {
		return g.cfg.FadeTicks
	}
	return FadeWaveDuration(g.matches, g.cfg.FadeTicks, g.cfg.WaveStagger)
}

// spawn brings the preview column into the top centre of the well.
func (g *Game) spawn() {
	g.falling = g.next
	g.falling.Position = g.spawnPosition()
	g.next = g.randomColumn()
	g.gravityTick = 0
	g.sinceSpawn = 0
	g.phase = PhaseFalling

	if !g.fits(g.falling) {
		g.phase = PhaseGameOver
	}
}

func (g *Game) spawnPosition() core.Coord {
	return core.C(g.cfg.BoardWidth/2, g.cfg.BoardHeight-board.ColumnSize)
}

// previewPosition is the cell of the preview column, right of the well.
func (g *Game) previewPosition() core.Coord {
	return core.C(g.cfg.BoardWidth+2, g.cfg.BoardHeight-board.ColumnSize)
}

func (g *Game) randomColumn() board.Column {
	var col board.Column
	for i := range col.Jewels {
		col.Jewels[i] = board.Jewel(g.rng.Intn(int(board.JewelCount)))
	}
	return col
}

// DropInterval returns the current number of ticks per gravity step.
func (g *Game) DropInterval() int {
	return g.difficulty.DropInterval(g.cfg.DropInterval, g.cfg.MinDropInterval, g.progress())
}

// PreviewAlpha returns the opacity of the preview column. It fades in after
// every spawn.
func (g *Game) PreviewAlpha() float32 {
	if g.cfg.PreviewFadeTicks <= 0 || g.sinceSpawn >= g.cfg.PreviewFadeTicks {
		return 1
	}
	return float32(g.sinceSpawn) / float32(g.cfg.PreviewFadeTicks)
}

// Policy returns how settled jewels are colored in the current phase.
func (g *Game) Policy() render.CellPolicy {
	switch g.phase {
	case PhaseFlash:
		return render.Highlighted{Matches: g.matches}
	case PhaseFade:
		if g.mode == ModeClassic {
			return render.GlobalFade{Matches: g.matches, Alpha: fadeFraction(g.phaseTick, g.cfg.FadeTicks)}
		}
		return render.PerCellFade{Table: FadeWave(g.matches, g.phaseTick, g.cfg.FadeTicks, g.cfg.WaveStagger)}
	default:
		return render.Plain{}
	}
}

// Frame describes the visible state. The board is shared with the game and
// is only valid until the next Step.
func (g *Game) Frame() render.Frame {
	f := render.Frame{
		Board:     g.board,
		Policy:    g.Policy(),
		Score:     uint64(g.score),
		HighScore: uint64(g.HighScore()),
	}

	next := g.next
	next.Position = g.previewPosition()
	f.Next = &next
	f.NextAlpha = g.PreviewAlpha()

	if g.phase == PhaseFalling {
		falling := g.falling
		f.Falling = &falling
	}
	return f
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Chain returns the current chain length; 0 outside a clear.
func (g *Game) Chain() int {
	return g.chain
}

// MaxChain returns the longest chain reaction this game.
func (g *Game) MaxChain() int {
	return g.maxChain
}

// Ticks returns the number of simulated ticks this game.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Level returns the current difficulty level in [0, 1].
func (g *Game) Level() float64 {
	return g.difficulty.Level(g.progress())
}

func (g *Game) progress() config.Progress {
	return config.Progress{Score: g.score, Ticks: int(g.tick), Cleared: g.cleared}
}

// Cleared returns the number of jewels cleared this game.
func (g *Game) Cleared() int {
	return g.cleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}
