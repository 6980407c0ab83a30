package sprite

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler requests a callback on the next host tick
type Scheduler interface {
	// ScheduleNext queues fn for the next tick and returns its handle
	ScheduleNext(fn func()) Handle

	// Cancel drops a queued callback. Unknown or spent handles are ignored.
	Cancel(h Handle)
}

// FrameScheduler is a Scheduler driven by the game loop calling Tick once per frame
type FrameScheduler struct {
	nextID Handle
	order  []Handle
	live   map[Handle]func()
}

// NewFrameScheduler creates an empty scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		live: make(map[Handle]func()),
	}
}

// ScheduleNext implements Scheduler
func (s *FrameScheduler) ScheduleNext(fn func()) Handle {
	s.nextID++
	id := s.nextID
	s.live[id] = fn
	s.order = append(s.order, id)
	return id
}

// Cancel implements Scheduler
func (s *FrameScheduler) Cancel(h Handle) {
	delete(s.live, h)
}

// Tick runs every callback queued before the call, in scheduling order.
// Callbacks queued during Tick wait for the next one.
func (s *FrameScheduler) Tick() {
	batch := s.order
	s.order = nil

	for _, id := range batch {
		fn, ok := s.live[id]
		if !ok {
			continue // cancelled, possibly by an earlier callback in this batch
		}
		delete(s.live, id)
		fn()
	}
}

// Pending returns the number of callbacks waiting for a tick
func (s *FrameScheduler) Pending() int {
	return len(s.live)
}
