package sprite

import (
	"image"

	"github.com/younwookim/overworld/internal/domain/entity"
)

// Config holds animator timing and sheet geometry
type Config struct {
	CellSize      int // Edge of one sheet cell in pixels
	TicksPerFrame int // A frame advances once its tick count exceeds this
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		CellSize:      DefaultCellSize,
		TicksPerFrame: DefaultTicksPerFrame,
	}
}

// run is one pass through a frame sequence
type run struct {
	dir   entity.Direction
	seq   FrameSequence
	frame int // Index into seq
	ticks int
}

// advance counts one tick and moves to the next frame once the threshold is exceeded
func (r *run) advance(ticksPerFrame int) {
	r.ticks++
	if r.ticks > ticksPerFrame {
		r.ticks = 0
		r.frame++
	}
}

func (r *run) done() bool {
	return r.frame >= r.seq.Len()
}

// Animator draws the avatar's walk cycle onto a Surface.
// It is not safe for concurrent use; all calls come from the game loop.
type Animator struct {
	config  Config
	surface Surface
	sched   Scheduler

	current *run
	handle  Handle // Live scheduler handle for current, 0 when none
}

// NewAnimator creates an animator drawing on surface and ticking through sched
func NewAnimator(cfg Config, surface Surface, sched Scheduler) *Animator {
	// Apply defaults for zero values
	if cfg.CellSize == 0 {
		cfg.CellSize = DefaultCellSize
	}
	if cfg.TicksPerFrame == 0 {
		cfg.TicksPerFrame = DefaultTicksPerFrame
	}

	return &Animator{
		config:  cfg,
		surface: surface,
		sched:   sched,
	}
}

// Config returns the animator configuration
func (a *Animator) Config() Config {
	return a.config
}

// Draw renders the idle frame for dir without starting a run
func (a *Animator) Draw(dir entity.Direction) {
	a.blit(dir, IdleFrame)
}

// StartRun plays one walk cycle facing dir. Any run in flight is cancelled
// before the first frame of the new one is drawn.
func (a *Animator) StartRun(dir entity.Direction, sameDirection bool) {
	a.cancel()

	a.current = &run{
		dir: dir,
		seq: SequenceFor(sameDirection),
	}
	a.step(a.current)
}

// Stop cancels the run in flight, leaving the last drawn frame on the surface
func (a *Animator) Stop() {
	a.cancel()
	a.current = nil
}

// Running reports whether a run is in flight
func (a *Animator) Running() bool {
	return a.current != nil
}

// Frame returns the sheet column the current run is showing, or IdleFrame
func (a *Animator) Frame() int {
	if a.current == nil {
		return IdleFrame
	}
	return ClampFrame(a.current.seq.At(a.current.frame))
}

func (a *Animator) step(r *run) {
	a.handle = 0

	a.blit(r.dir, ClampFrame(r.seq.At(r.frame)))
	r.advance(a.config.TicksPerFrame)

	if r.done() {
		a.current = nil
		return
	}

	a.handle = a.sched.ScheduleNext(func() { a.step(r) })
}

func (a *Animator) cancel() {
	if a.handle != 0 {
		a.sched.Cancel(a.handle)
		a.handle = 0
	}
}

func (a *Animator) blit(dir entity.Direction, frame int) {
	cell := a.config.CellSize
	row := dir.SheetRow() * cell

	src := image.Rect(frame*cell, row, frame*cell+cell, row+cell)
	dst := image.Rect(0, 0, cell, cell)

	a.surface.Clear()
	a.surface.Blit(src, dst)
}
