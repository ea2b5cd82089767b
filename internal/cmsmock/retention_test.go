package cmsmock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/portfolio/internal/entities"
)

func TestRetentionScheduler_PurgeDeletesExpiredMessages(t *testing.T) {
	store := setupStore(t)

	old, err := store.CreateMessage(entities.NewContactForm("Old", "old@example.com", "", "ciao"))
	require.NoError(t, err)
	_, err = store.CreateMessage(entities.NewContactForm("New", "new@example.com", "", "ciao"))
	require.NoError(t, err)

	require.NoError(t, store.DB.Model(old).Update("created_at", time.Now().Add(-48*time.Hour)).Error)

	scheduler := NewRetentionScheduler(store, "0 3 * * *", 24*time.Hour)
	deleted, err := scheduler.Purge()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	messages, err := store.Messages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "New", messages[0].Name)

	deleted, err = scheduler.Purge()
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestRetentionScheduler_Start(t *testing.T) {
	tests := []struct {
		name        string
		schedule    string
		maxAge      time.Duration
		wantErr     bool
		wantRunning bool
	}{
		{name: "valid schedule", schedule: "0 3 * * *", maxAge: time.Hour, wantRunning: true},
		{name: "disabled", schedule: "0 3 * * *", maxAge: 0},
		{name: "invalid schedule", schedule: "every night", maxAge: time.Hour, wantErr: true},
		{name: "seconds field rejected", schedule: "0 0 3 * * *", maxAge: time.Hour, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			scheduler := NewRetentionScheduler(setupStore(t), tt.schedule, tt.maxAge)
			err := scheduler.Start(ctx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantRunning, scheduler.IsRunning())

			scheduler.Stop()
			assert.False(t, scheduler.IsRunning())
		})
	}
}

func TestRetentionScheduler_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	scheduler := NewRetentionScheduler(setupStore(t), "*/5 * * * *", time.Hour)
	require.NoError(t, scheduler.Start(ctx))
	require.True(t, scheduler.IsRunning())

	cancel()
	assert.Eventually(t, func() bool { return !scheduler.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}
