package generation

import "sync"

// Ticket identifies one generation request.
type Ticket uint64

// Sequencer allows one outstanding generation at a time and tells late
// replies apart from the current one. Abandoning a request makes any reply
// to it stale.
type Sequencer struct {
	mu       sync.Mutex
	epoch    Ticket
	inFlight bool
}

// Begin starts a request. It returns false while another request is still
// outstanding.
func (s *Sequencer) Begin() (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return 0, false
	}
	s.epoch++
	s.inFlight = true
	return s.epoch, true
}

// Current reports whether t is the outstanding request.
func (s *Sequencer) Current(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight && t == s.epoch
}

// Settle finishes request t. It returns false for a stale ticket, in which
// case the reply must be discarded.
func (s *Sequencer) Settle(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inFlight || t != s.epoch {
		return false
	}
	s.inFlight = false
	return true
}

// Abandon gives up on the outstanding request so a new one may begin.
func (s *Sequencer) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		s.inFlight = false
		s.epoch++
	}
}

// InFlight reports whether a request is outstanding.
func (s *Sequencer) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}
