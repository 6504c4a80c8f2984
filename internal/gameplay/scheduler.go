package gameplay

import (
	"sort"
	"time"
)

// timer is a pending one-shot action.
type timer struct {
	token    Token
	deadline time.Duration
	seq      uint64
}

// Scheduler is a tick-driven queue of one-shot timers keyed by token.
// The host advances it with the simulated frame time, so timers respect
// pauses and stay deterministic under a fixed tick rate.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule arms token to fire after delay. Re-scheduling a pending token
// replaces its deadline.
func (s *Scheduler) Schedule(delay time.Duration, token Token) {
	if delay < 0 {
		delay = 0
	}
	s.Cancel(token)
	s.seq++
	s.timers = append(s.timers, timer{
		token:    token,
		deadline: s.now + delay,
		seq:      s.seq,
	})
}

// Cancel removes a pending token. Returns false if it was not pending.
func (s *Scheduler) Cancel(token Token) bool {
	for i, t := range s.timers {
		if t.token == token {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves time forward and returns the tokens that came due,
// ordered by deadline and then by scheduling order.
func (s *Scheduler) Advance(dt time.Duration) []Token {
	if dt > 0 {
		s.now += dt
	}

	var due []timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.deadline <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.timers = kept

	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})

	tokens := make([]Token, len(due))
	for i, t := range due {
		tokens[i] = t.token
	}
	return tokens
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Remaining returns the time left before token fires.
func (s *Scheduler) Remaining(token Token) (time.Duration, bool) {
	for _, t := range s.timers {
		if t.token == token {
			return t.deadline - s.now, true
		}
	}
	return 0, false
}

// Clear drops every pending timer.
func (s *Scheduler) Clear() {
	s.timers = s.timers[:0]
}
