// Package game runs the scene loop inside ebiten.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/overworld/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	log     *zap.SugaredLogger
	screenW int
	screenH int
	dt      float64
	frames  uint64
	closed  bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initial scene.Scene, screenW, screenH, framerate int, log *zap.SugaredLogger) *Game {
	if framerate <= 0 {
		framerate = 60
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	g := &Game{
		current: initial,
		log:     log,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
	}
	g.log.Debugw("enter scene", "scene", scene.NameOf(initial))
	g.current.OnEnter()
	return g
}

// Update runs the current scene and switches scenes on request.
// Any error from the scene, ebiten.Termination included, exits it first.
func (g *Game) Update() error {
	g.frames++

	next, err := g.current.Update(g.dt)
	if err != nil {
		if !errors.Is(err, ebiten.Termination) {
			g.log.Errorw("scene failed", "scene", scene.NameOf(g.current), "frame", g.frames, "error", err)
		}
		g.Close()
		return err
	}

	if next != nil {
		g.log.Infow("switch scene", "from", scene.NameOf(g.current), "to", scene.NameOf(next), "frame", g.frames)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once, so it can flush recordings.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns the number of updates run so far
func (g *Game) Frames() uint64 {
	return g.frames
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
