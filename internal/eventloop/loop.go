package eventloop

import (
	"context"
	"log"
	"sync"
	"time"
)

// Loop is the wall-clock Scheduler: one goroutine drains a task queue and
// timers post their callbacks onto it.
type Loop struct {
	mu        sync.Mutex
	queue     []func()
	wake      chan struct{}
	timers    map[TimerID]*time.Timer
	nextID    TimerID
	isRunning bool
	done      chan struct{}

	jobs sync.WaitGroup
}

func New() *Loop {
	return &Loop{
		wake:   make(chan struct{}, 1),
		timers: make(map[TimerID]*time.Timer),
		done:   make(chan struct{}),
	}
}

// Start runs the loop until ctx is cancelled.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	if l.isRunning {
		l.mu.Unlock()
		return
	}
	l.isRunning = true
	l.mu.Unlock()

	go l.run(ctx)
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) IsRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isRunning
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)
	for {
		for {
			task, ok := l.dequeue()
			if !ok {
				break
			}
			l.runTask(task)
		}

		select {
		case <-ctx.Done():
			l.stop()
			return
		case <-l.wake:
		}
	}
}

func (l *Loop) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event loop: task panicked: %v", r)
		}
	}()
	task()
}

func (l *Loop) dequeue() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	task := l.queue[0]
	l.queue = l.queue[1:]
	return task, true
}

func (l *Loop) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, t := range l.timers {
		t.Stop()
		delete(l.timers, id)
	}
	l.queue = nil
	l.isRunning = false
}

// Do queues fn behind the tasks already posted. It never blocks, so loop
// tasks may post further tasks.
func (l *Loop) Do(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) Go(fn func()) {
	l.jobs.Add(1)
	go func() {
		defer l.jobs.Done()
		fn()
	}()
}

// Wait blocks until every job started with Go has returned.
func (l *Loop) Wait() {
	l.jobs.Wait()
}

func (l *Loop) SetTimeout(d time.Duration, fn func()) TimerID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.timers[id] = time.AfterFunc(d, func() {
		l.Do(func() {
			if l.take(id) {
				fn()
			}
		})
	})
	return id
}

// take unregisters a fired timer, reporting false if it was cleared meanwhile.
func (l *Loop) take(id TimerID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.timers[id]; !ok {
		return false
	}
	delete(l.timers, id)
	return true
}

func (l *Loop) ClearTimeout(id TimerID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.timers[id]; ok {
		t.Stop()
		delete(l.timers, id)
	}
}

func (l *Loop) RequestAnimationFrame(fn func(now time.Time)) TimerID {
	return l.SetTimeout(FrameInterval, func() { fn(time.Now()) })
}

func (l *Loop) Now() time.Time {
	return time.Now()
}
