package replay

// Version is written into every recording
const Version = "2.0"

// FrameInput records the intents of a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	U   bool `json:"u,omitempty"`   // Move up
	D   bool `json:"d,omitempty"`   // Move down
	L   bool `json:"l,omitempty"`   // Move left
	R   bool `json:"r,omitempty"`   // Move right
	I   bool `json:"i,omitempty"`   // Interact
	Inv bool `json:"inv,omitempty"` // Toggle inventory
	C   bool `json:"c,omitempty"`   // Click (dismiss)
}

// Empty reports whether the frame carries no input
func (fi FrameInput) Empty() bool {
	return !fi.U && !fi.D && !fi.L && !fi.R && !fi.I && !fi.Inv && !fi.C
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Length    int          `json:"length"` // Total frames, including idle ones not stored
	Frames    []FrameInput `json:"frames"` // Only frames with input, ascending by F
}
