// Package splash is shown when the world cannot be entered.
package splash

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/overworld/internal/application/scene"
	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
)

var colorBG = color.RGBA{41, 38, 52, 255}

// Splash explains why access was denied and offers a retry
type Splash struct {
	reason string
	retry  func() scene.Scene
	keys   system.KeySource
}

// New creates a splash screen. retry builds the scene R switches to.
func New(reason string, retry func() scene.Scene, keys system.KeySource) *Splash {
	if keys == nil {
		keys = system.EbitenKeys{}
	}
	return &Splash{reason: reason, retry: retry, keys: keys}
}

// Name implements scene.Named
func (s *Splash) Name() string { return state.StateSplash.String() }

// Reason returns the message shown to the player
func (s *Splash) Reason() string { return s.reason }

// Update waits for retry or quit
func (s *Splash) Update(_ float64) (scene.Scene, error) {
	if s.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyR) && s.retry != nil {
		return s.retry(), nil
	}
	return nil, nil
}

// Draw renders the message
func (s *Splash) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, "ACCESS DENIED", w/2-39, h/2-30)
	ebitenutil.DebugPrintAt(screen, s.reason, w/2-len(s.reason)*3, h/2-10)
	ebitenutil.DebugPrintAt(screen, "R: retry  ESC: quit", w/2-57, h/2+20)
}

func (s *Splash) OnEnter() {}

func (s *Splash) OnExit() {}
