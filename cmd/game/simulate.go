package main

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/younwookim/overworld/internal/application/replay"
	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/domain/sprite"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// SimulationResult is the outcome of running a recording without a window
type SimulationResult struct {
	Frames        int    `json:"frames"`
	X             int    `json:"x"`
	Y             int    `json:"y"`
	Facing        string `json:"facing"`
	Runs          int    `json:"runs"`
	Draws         int    `json:"draws"`
	Dialogue      string `json:"dialogue,omitempty"`
	InventoryOpen bool   `json:"inventoryOpen"`
}

// countingSurface stands in for the canvas and counts blits
type countingSurface struct {
	blits int
}

func (s *countingSurface) Clear() {}

func (s *countingSurface) Blit(_, _ image.Rectangle) { s.blits++ }

// countingWalker counts runs before handing them to the animator
type countingWalker struct {
	animator *sprite.Animator
	runs     int
}

func (w *countingWalker) StartRun(dir entity.Direction, sameDirection bool) {
	w.runs++
	w.animator.StartRun(dir, sameDirection)
}

// Simulate plays data through the same controller, gate and animator the
// playing scene uses, stepping the frame clock the same way.
func Simulate(data replay.ReplayData, cfg *config.GameConfig, stage *entity.Stage) SimulationResult {
	framerate := cfg.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	frameDur := time.Second / time.Duration(framerate)
	start := time.Unix(0, 0)

	surface := &countingSurface{}
	sched := sprite.NewFrameScheduler()
	animator := sprite.NewAnimator(sprite.Config{
		CellSize:      cfg.Player.Sprite.CellSize,
		TicksPerFrame: cfg.Player.Sprite.TicksPerFrame,
	}, surface, sched)
	walker := &countingWalker{animator: animator}

	session := state.NewSession(stage)
	gate := system.NewStepGate(time.Duration(cfg.Player.Movement.StepIntervalMs) * time.Millisecond)
	controller := system.NewPlayerController(session, system.NewMovementSystem(stage), gate, walker, system.NewSignReader(stage))

	animator.Draw(session.Avatar.Facing)

	replayer := replay.NewReplayer(data)
	frame := 0
	for {
		intents, ok := replayer.Next()
		if !ok {
			break
		}
		sched.Tick()
		controller.ApplyAll(intents, start.Add(time.Duration(frame)*frameDur))
		frame++
	}

	return SimulationResult{
		Frames:        frame,
		X:             session.Avatar.X,
		Y:             session.Avatar.Y,
		Facing:        session.Avatar.Facing.String(),
		Runs:          walker.runs,
		Draws:         surface.blits,
		Dialogue:      session.Dialogue.Context,
		InventoryOpen: session.Inventory.Show,
	}
}

func printSimulation(w io.Writer, result SimulationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
