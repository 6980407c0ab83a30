// Package sprite drives directional walk animations onto a raster surface.
//
// The Animator owns at most one run at a time. Each run steps through a
// fixed three-frame sequence, one tick per host display refresh, and
// reschedules itself through a Scheduler until the sequence is exhausted.
package sprite

const (
	// IdleFrame is the sheet column of the neutral standing pose
	IdleFrame = 1

	// DefaultTicksPerFrame is how many ticks a frame must exceed before advancing
	DefaultTicksPerFrame = 15

	// DefaultCellSize is the edge of one square sheet cell in pixels
	DefaultCellSize = 16

	// maxFrame is the highest sheet column defined by the asset
	maxFrame = 3
)

// FrameSequence is the ordered list of sheet columns played by one run
type FrameSequence [3]int

var (
	// StepSequence is played when the avatar turns or steps in a new direction
	StepSequence = FrameSequence{1, 0, 1}

	// AltStepSequence is played on alternating steps in the same direction
	AltStepSequence = FrameSequence{1, 2, 1}
)

// SequenceFor selects the sequence for a run
func SequenceFor(sameDirection bool) FrameSequence {
	if sameDirection {
		return AltStepSequence
	}
	return StepSequence
}

// At returns the column at index i, or -1 past either end
func (s FrameSequence) At(i int) int {
	if i < 0 || i >= len(s) {
		return -1
	}
	return s[i]
}

// Len returns the number of frames in the sequence
func (s FrameSequence) Len() int {
	return len(s)
}

// ClampFrame maps any column outside the sheet to the idle frame
func ClampFrame(frame int) int {
	if frame < 0 || frame > maxFrame {
		return IdleFrame
	}
	return frame
}
