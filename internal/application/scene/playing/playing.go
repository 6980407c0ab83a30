// Package playing provides the overworld scene: the avatar walking the stage.
package playing

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/younwookim/overworld/internal/application/replay"
	"github.com/younwookim/overworld/internal/application/scene"
	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/application/ui"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/domain/sprite"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/render"
)

const panelSlideSeconds = 0.18

// SheetWatcher reports changed sheet files without blocking
type SheetWatcher interface {
	Poll() (string, bool)
}

// Options are the optional collaborators of the scene
type Options struct {
	Keys       system.KeySource // nil reads ebiten input
	Sheet      *ebiten.Image    // nil uses the placeholder sheet
	Recorder   *replay.Recorder
	RecordPath string // Empty generates a name on save
	Replayer   *replay.Replayer
	Watcher    SheetWatcher
	LoadSheet  func(path string) (*ebiten.Image, error)
	Debug      bool
	Log        *zap.SugaredLogger
}

// Playing is the overworld scene
type Playing struct {
	stageName string
	stage     *entity.Stage
	log       *zap.SugaredLogger

	session    *state.Session
	sched      *sprite.FrameScheduler
	animator   *sprite.Animator
	canvas     *render.Canvas
	controller *system.PlayerController
	gate       *system.StepGate
	input      *system.InputSystem
	keys       system.KeySource

	dialogue  *ui.Panel
	inventory *ui.Panel
	face      text.Face

	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer
	watcher    SheetWatcher
	loadSheet  func(path string) (*ebiten.Image, error)
	debug      bool

	background  color.RGBA
	screenW     int
	screenH     int
	tileSize    int
	drawOffsetY int

	// Simulated clock: the step gate sees frame * frameDur, so replays match
	start    time.Time
	frameDur time.Duration
	frame    int
}

// New creates the scene for a loaded stage
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, stage *entity.Stage, opts Options) (*Playing, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	keys := opts.Keys
	if keys == nil {
		keys = system.EbitenKeys{}
	}

	keymap, err := system.NewKeymap(*cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to build keymap: %w", err)
	}

	spriteCfg := sprite.Config{
		CellSize:      cfg.Player.Sprite.CellSize,
		TicksPerFrame: cfg.Player.Sprite.TicksPerFrame,
	}
	sheet := opts.Sheet
	if sheet == nil {
		sheet = render.PlaceholderSheet(spriteCfg.CellSize)
	}
	canvas, err := render.NewCanvas(sheet, spriteCfg.CellSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar canvas: %w", err)
	}

	face, err := render.NewFace(render.DefaultFontSize)
	if err != nil {
		return nil, err
	}

	background, err := parseColor(stageCfg.Background)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", stageCfg.ID, err)
	}

	sched := sprite.NewFrameScheduler()
	animator := sprite.NewAnimator(spriteCfg, canvas, sched)
	session := state.NewSession(stage)
	gate := system.NewStepGate(time.Duration(cfg.Player.Movement.StepIntervalMs) * time.Millisecond)
	controller := system.NewPlayerController(session, system.NewMovementSystem(stage), gate, animator, system.NewSignReader(stage))

	screenW, screenH := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	framerate := cfg.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	p := &Playing{
		stageName:   stageCfg.ID,
		stage:       stage,
		log:         log,
		session:     session,
		sched:       sched,
		animator:    animator,
		canvas:      canvas,
		controller:  controller,
		gate:        gate,
		input:       system.NewInputSystemWithSource(keymap, keys),
		keys:        keys,
		dialogue:    ui.NewPanel(float32(screenH), float32(screenH-dialogueHeight), panelSlideSeconds),
		inventory:   ui.NewPanel(float32(screenW), float32(screenW-inventoryWidth), panelSlideSeconds),
		face:        face,
		recorder:    opts.Recorder,
		recordPath:  opts.RecordPath,
		replayer:    opts.Replayer,
		watcher:     opts.Watcher,
		loadSheet:   opts.LoadSheet,
		debug:       opts.Debug,
		background:  background,
		screenW:     screenW,
		screenH:     screenH,
		tileSize:    stage.TileSize,
		drawOffsetY: cfg.Player.Sprite.DrawOffsetY,
		start:       time.Unix(0, 0),
		frameDur:    time.Second / time.Duration(framerate),
	}

	if p.recorder != nil {
		log.Infow("recording enabled", "stage", stageCfg.ID, "file", p.recordPath)
	}
	if p.replayer != nil {
		log.Infow("replaying", "stage", p.replayer.Stage(), "frames", p.replayer.TotalFrames())
	}

	return p, nil
}

// Name implements scene.Named
func (p *Playing) Name() string { return state.StatePlaying.String() }

// Update runs one frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}
	if p.keys.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	intents := p.nextIntents()
	if p.recorder != nil {
		p.recorder.RecordFrame(intents)
	}

	// Runs started this frame get their second tick next frame
	p.sched.Tick()
	p.controller.ApplyAll(intents, p.Now())
	p.frame++

	p.dialogue.SetVisible(p.session.Dialogue.Show)
	p.inventory.SetVisible(p.session.Inventory.Show)
	for _, panel := range []*ui.Panel{p.dialogue, p.inventory} {
		if !panel.Settled() {
			panel.Update(float32(dt))
		}
	}

	p.reloadSheet()

	return nil, nil
}

// nextIntents reads the replay while it lasts, then live input
func (p *Playing) nextIntents() []system.Intent {
	if p.replayer != nil {
		if intents, ok := p.replayer.Next(); ok {
			return intents
		}
		p.log.Infow("replay finished", "frames", p.replayer.TotalFrames())
		p.replayer = nil
	}
	return p.input.Poll()
}

// Now returns the simulated time of the current frame
func (p *Playing) Now() time.Time {
	return p.start.Add(time.Duration(p.frame) * p.frameDur)
}

func (p *Playing) reloadSheet() {
	if p.watcher == nil || p.loadSheet == nil {
		return
	}
	path, ok := p.watcher.Poll()
	if !ok {
		return
	}

	sheet, err := p.loadSheet(path)
	if err == nil {
		err = p.canvas.SetSheet(sheet)
	}
	if err != nil {
		p.log.Warnw("sheet reload failed, keeping previous sheet", "file", path, "error", err)
		return
	}

	p.log.Infow("sheet reloaded", "file", path)
	if !p.animator.Running() {
		p.animator.Draw(p.session.Avatar.Facing)
	}
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Errorw("failed to save recording", "file", filename, "error", err)
		return
	}
	p.log.Infow("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// OnEnter shows the avatar standing in its facing direction
func (p *Playing) OnEnter() {
	p.animator.Draw(p.session.Avatar.Facing)
}

// OnExit stops the walk and flushes the recording
func (p *Playing) OnExit() {
	p.animator.Stop()
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Session exposes the live session state
func (p *Playing) Session() *state.Session {
	return p.session
}

// Animator exposes the avatar animator
func (p *Playing) Animator() *sprite.Animator {
	return p.animator
}

// Frame returns the number of updates run
func (p *Playing) Frame() int {
	return p.frame
}
