// Package boot checks the stored access token before the world opens.
package boot

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/younwookim/overworld/internal/application/scene"
	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/infrastructure/auth"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/storage"
)

// Denial reasons shown on the splash screen
const (
	ReasonNoToken     = "no access token found"
	ReasonInvalid     = "access token was rejected"
	ReasonUnreachable = "could not reach the server"
)

var colorBG = color.RGBA{41, 38, 52, 255}

// Next builds the scenes boot can hand over to
type Next struct {
	Playing func() (scene.Scene, error)
	Denied  func(reason string) scene.Scene
}

// Boot validates the token off the game loop and switches scene on the result
type Boot struct {
	store     storage.TokenStore
	validator auth.Validator
	timeout   time.Duration
	next      Next
	log       *zap.SugaredLogger

	result  chan error
	cancel  context.CancelFunc
	elapsed float64
}

// New creates a boot scene. A non-positive timeout falls back to the config default.
func New(store storage.TokenStore, validator auth.Validator, timeout time.Duration, next Next, log *zap.SugaredLogger) *Boot {
	if timeout <= 0 {
		timeout = config.DefaultAuthTimeoutMs * time.Millisecond
	}
	return &Boot{
		store:     store,
		validator: validator,
		timeout:   timeout,
		next:      next,
		log:       log,
	}
}

// Name implements scene.Named
func (b *Boot) Name() string { return state.StateLoading.String() }

// OnEnter starts a fresh validation
func (b *Boot) OnEnter() {
	b.elapsed = 0
	b.result = make(chan error, 1)

	token, err := b.store.Load()
	if err != nil {
		b.result <- err
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	b.cancel = cancel
	go func(result chan<- error) {
		result <- b.validator.Validate(ctx, token)
	}(b.result)
}

// OnExit abandons a validation still in flight
func (b *Boot) OnExit() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// Update polls for the validation result
func (b *Boot) Update(dt float64) (scene.Scene, error) {
	b.elapsed += dt

	select {
	case err := <-b.result:
		return b.resolve(err)
	default:
		return nil, nil
	}
}

func (b *Boot) resolve(err error) (scene.Scene, error) {
	switch {
	case err == nil:
		b.log.Infow("token accepted")
		next, err := b.next.Playing()
		if err != nil {
			return nil, fmt.Errorf("failed to start world: %w", err)
		}
		return next, nil

	case errors.Is(err, storage.ErrNoToken):
		b.log.Infow("no stored token")
		return b.next.Denied(ReasonNoToken), nil

	case errors.Is(err, auth.ErrInvalidToken):
		b.log.Warnw("token rejected, forgetting it")
		if derr := b.store.Delete(); derr != nil {
			b.log.Errorw("failed to delete token", "error", derr)
		}
		return b.next.Denied(ReasonInvalid), nil

	default:
		b.log.Warnw("token check failed", "error", err)
		return b.next.Denied(ReasonUnreachable), nil
	}
}

// Draw shows a waiting message
func (b *Boot) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	dots := strings.Repeat(".", int(b.elapsed*3)%4)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, "Connecting"+dots, w/2-36, h/2-8)
}
