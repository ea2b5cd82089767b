package eventloop

import (
	"sort"
	"time"
)

// Manual is a virtual-time Scheduler driven by the caller. Nothing happens
// until Advance or Flush is called, which makes page behaviour deterministic
// under test. Manual is not safe for concurrent use.
type Manual struct {
	now     time.Time
	nextID  TimerID
	seq     uint64
	pending []*entry
	jobs    []func()
}

type entry struct {
	id  TimerID
	at  time.Time
	seq uint64
	fn  func()
}

// NewManual returns a loop whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	return m.now
}

// Do runs fn immediately: the caller already is the loop.
func (m *Manual) Do(fn func()) {
	fn()
}

// Go queues fn until the next Flush.
func (m *Manual) Go(fn func()) {
	m.jobs = append(m.jobs, fn)
}

// PendingJobs reports how many Go jobs wait for Flush.
func (m *Manual) PendingJobs() int {
	return len(m.jobs)
}

// Flush runs queued Go jobs, including jobs queued while flushing.
func (m *Manual) Flush() {
	for len(m.jobs) > 0 {
		job := m.jobs[0]
		m.jobs = m.jobs[1:]
		job()
	}
}

func (m *Manual) SetTimeout(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	return m.schedule(m.now.Add(d), fn)
}

func (m *Manual) RequestAnimationFrame(fn func(now time.Time)) TimerID {
	return m.schedule(m.nextFrame(), func() { fn(m.now) })
}

// nextFrame is the first frame boundary strictly after now.
func (m *Manual) nextFrame() time.Time {
	elapsed := m.now.UnixNano() % int64(FrameInterval)
	return m.now.Add(FrameInterval - time.Duration(elapsed))
}

func (m *Manual) schedule(at time.Time, fn func()) TimerID {
	m.nextID++
	m.seq++
	m.pending = append(m.pending, &entry{id: m.nextID, at: at, seq: m.seq, fn: fn})
	return m.nextID
}

func (m *Manual) ClearTimeout(id TimerID) {
	for i, e := range m.pending {
		if e.id == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Pending reports how many timers and frames have not fired yet.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves the clock forward by d, firing due timers and frames in time
// order. Callbacks scheduled while advancing fire too if they fall within d.
func (m *Manual) Advance(d time.Duration) {
	deadline := m.now.Add(d)
	for {
		next := m.popDue(deadline)
		if next == nil {
			break
		}
		m.now = next.at
		next.fn()
	}
	m.now = deadline
}

// RunFor advances the clock and then flushes queued Go jobs.
func (m *Manual) RunFor(d time.Duration) {
	m.Advance(d)
	m.Flush()
}

func (m *Manual) popDue(deadline time.Time) *entry {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		a, b := m.pending[i], m.pending[j]
		if !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.seq < b.seq
	})
	first := m.pending[0]
	if first.at.After(deadline) {
		return nil
	}
	m.pending = m.pending[1:]
	return first
}
