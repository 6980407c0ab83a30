package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/overworld/internal/application/system"
)

// Replayer handles intent playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
	next  int // Index into data.Frames of the next stored frame
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Next returns the intents for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() (intents []system.Intent, ok bool) {
	if r.Done() {
		return nil, false
	}

	if r.next < len(r.data.Frames) && r.data.Frames[r.next].F == r.frame {
		intents = r.data.Frames[r.next].Intents()
		r.next++
	}
	r.frame++

	return intents, true
}

// Done reports whether playback has reached the end
func (r *Replayer) Done() bool {
	return r.frame >= r.data.Length
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.Length
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
}
