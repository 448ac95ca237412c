package session

import (
	"sync"
	"time"
)

type slot struct {
	latest   uint64
	inFlight int
	touched  time.Time
}

// Sequencer orders requests within a session. Every request takes a ticket
// when it is issued; only the holder of the newest ticket may commit its
// response, so a slow superseded response can never overwrite a newer chart.
type Sequencer struct {
	mu    sync.Mutex
	slots map[string]*slot
	now   func() time.Time
}

func NewSequencer() *Sequencer {
	return &Sequencer{slots: make(map[string]*slot), now: time.Now}
}

// Issue returns the ticket for a new request in session id. The request
// counts as in flight until Done is called for it.
func (s *Sequencer) Issue(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[id]
	if !ok {
		sl = &slot{}
		s.slots[id] = sl
	}
	sl.latest++
	sl.inFlight++
	sl.touched = s.now()
	return sl.latest
}

// Done marks one request of session id as finished.
func (s *Sequencer) Done(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok := s.slots[id]; ok && sl.inFlight > 0 {
		sl.inFlight--
		sl.touched = s.now()
	}
}

// Tracks reports whether session id is known to the sequencer.
func (s *Sequencer) Tracks(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.slots[id]
	return ok
}

// IsCurrent reports whether ticket is still the newest issued for session id.
func (s *Sequencer) IsCurrent(id string, ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[id]
	return ok && sl.latest == ticket
}

// Sweep forgets sessions idle for longer than ttl and returns their ids.
// Sessions with a request in flight are never idle.
func (s *Sequencer) Sweep(ttl time.Duration) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	var gone []string
	for id, sl := range s.slots {
		if sl.inFlight == 0 && sl.touched.Before(cutoff) {
			delete(s.slots, id)
			gone = append(gone, id)
		}
	}
	return gone
}

// Len returns the number of tracked sessions.
func (s *Sequencer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}
