package cmsmock

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule checks a standard 5-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := scheduleParser.Parse(schedule)
	return err
}

// RetentionScheduler periodically deletes contact messages older than maxAge.
type RetentionScheduler struct {
	store    *Store
	schedule string
	maxAge   time.Duration
	now      func() time.Time

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

func NewRetentionScheduler(store *Store, schedule string, maxAge time.Duration) *RetentionScheduler {
	return &RetentionScheduler{
		store:    store,
		schedule: schedule,
		maxAge:   maxAge,
		now:      time.Now,
		cron:     cron.New(cron.WithParser(scheduleParser)),
	}
}

// Start schedules the purge job. A zero maxAge disables retention.
func (s *RetentionScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.maxAge <= 0 {
		log.Printf("Retention scheduler: disabled")
		return nil
	}
	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.Purge(); err != nil {
			log.Printf("Retention scheduler: purge failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule purge job: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	entries := s.cron.Entries()
	log.Printf("Retention scheduler: started with schedule '%s', keeping %v. Next run: %v",
		s.schedule, s.maxAge, entries[0].Next)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop waits for a running purge to finish.
func (s *RetentionScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	log.Printf("Retention scheduler: stopped")
}

func (s *RetentionScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// Purge deletes expired messages now and reports how many were removed.
func (s *RetentionScheduler) Purge() (int64, error) {
	cutoff := s.now().Add(-s.maxAge)
	deleted, err := s.store.DeleteMessagesBefore(cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Printf("Retention scheduler: deleted %d messages older than %s", deleted, cutoff.Format(time.RFC3339))
	}
	return deleted, nil
}
