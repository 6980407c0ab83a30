package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameScheduler_RunsInOrder(t *testing.T) {
	s := NewFrameScheduler()
	var calls []string

	s.ScheduleNext(func() { calls = append(calls, "a") })
	s.ScheduleNext(func() { calls = append(calls, "b") })
	assert.Equal(t, 2, s.Pending())

	s.Tick()

	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Equal(t, 0, s.Pending())
}

func TestFrameScheduler_NestedScheduleWaitsForNextTick(t *testing.T) {
	s := NewFrameScheduler()
	count := 0

	var reschedule func()
	reschedule = func() {
		count++
		s.ScheduleNext(reschedule)
	}
	s.ScheduleNext(reschedule)

	s.Tick()
	assert.Equal(t, 1, count)
	s.Tick()
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, s.Pending())
}

func TestFrameScheduler_Cancel(t *testing.T) {
	s := NewFrameScheduler()
	ran := false

	h := s.ScheduleNext(func() { ran = true })
	assert.NotZero(t, h)
	s.Cancel(h)
	s.Tick()

	assert.False(t, ran)

	// spent and unknown handles are ignored
	s.Cancel(h)
	s.Cancel(Handle(999))
	assert.Equal(t, 0, s.Pending())
}

func TestFrameScheduler_CancelWithinBatch(t *testing.T) {
	s := NewFrameScheduler()
	ranSecond := false

	var second Handle
	s.ScheduleNext(func() { s.Cancel(second) })
	second = s.ScheduleNext(func() { ranSecond = true })

	s.Tick()

	assert.False(t, ranSecond, "a handle cancelled earlier in the batch must not run")
}

func TestFrameScheduler_HandlesAreUnique(t *testing.T) {
	s := NewFrameScheduler()
	seen := make(map[Handle]bool)

	for i := 0; i < 100; i++ {
		h := s.ScheduleNext(func() {})
		assert.False(t, seen[h])
		seen[h] = true
		if i%10 == 0 {
			s.Tick()
		}
	}
}

func TestSequenceFor(t *testing.T) {
	assert.Equal(t, FrameSequence{1, 0, 1}, SequenceFor(false))
	assert.Equal(t, FrameSequence{1, 2, 1}, SequenceFor(true))
	assert.Equal(t, -1, StepSequence.At(3))
	assert.Equal(t, -1, StepSequence.At(-1))
}

func TestClampFrame(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 1},
		{0, 0},
		{2, 2},
		{3, 3},
		{4, 1},
		{100, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampFrame(tt.in), "ClampFrame(%d)", tt.in)
	}
}
