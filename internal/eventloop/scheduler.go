// Package eventloop runs page work on a single logical thread. Every document
// mutation, timer callback and animation frame executes on the loop; blocking
// work such as content fetches runs elsewhere and posts its result back.
package eventloop

import "time"

// FrameInterval is the spacing between animation frames.
const FrameInterval = 16 * time.Millisecond

// TimerID identifies a pending timeout or animation frame.
type TimerID uint64

// Scheduler is the page's view of the event loop.
type Scheduler interface {
	// Do runs fn on the loop.
	Do(fn func())
	// Go runs fn off the loop. fn must use Do to touch page state.
	Go(fn func())
	// SetTimeout runs fn on the loop once d has elapsed.
	SetTimeout(d time.Duration, fn func()) TimerID
	// ClearTimeout cancels a pending timeout or frame. Unknown ids are ignored.
	ClearTimeout(id TimerID)
	// RequestAnimationFrame runs fn on the next frame with the frame time.
	RequestAnimationFrame(fn func(now time.Time)) TimerID
	Now() time.Time
}
