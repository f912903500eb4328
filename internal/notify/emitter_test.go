package notify

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_DeliversInSubscriptionOrder(t *testing.T) {
	e := NewEmitter(logger.Nop())

	var got []string
	e.Subscribe(func(n models.Notification) { got = append(got, "first:"+string(n.Kind)) })
	e.Subscribe(func(n models.Notification) { got = append(got, "second:"+string(n.Kind)) })

	e.Publish(models.Notification{Kind: models.NotificationLoginSuccess})

	assert.Equal(t, []string{"first:login-success", "second:login-success"}, got)
	assert.Equal(t, Stats{Published: 1, Delivered: 2}, e.Stats())
}

func TestEmitter_FiltersByKind(t *testing.T) {
	e := NewEmitter(logger.Nop())

	var stats, all int
	e.Subscribe(func(models.Notification) { stats++ }, models.NotificationStatsUpdated)
	e.Subscribe(func(models.Notification) { all++ })

	e.Publish(models.Notification{Kind: models.NotificationLoginFailure})
	e.Publish(models.Notification{Kind: models.NotificationStatsUpdated})

	assert.Equal(t, 1, stats)
	assert.Equal(t, 2, all)
}

func TestEmitter_Unsubscribe(t *testing.T) {
	e := NewEmitter(logger.Nop())

	var calls int
	sub := e.Subscribe(func(models.Notification) { calls++ })
	e.Publish(models.Notification{Kind: models.NotificationLogoutSuccess})

	sub.Unsubscribe()
	sub.Unsubscribe()
	e.Publish(models.Notification{Kind: models.NotificationLogoutSuccess})

	assert.Equal(t, 1, calls)
}

func TestEmitter_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	e := NewEmitter(logger.Nop())

	var delivered bool
	e.Subscribe(func(models.Notification) { panic("boom") })
	e.Subscribe(func(models.Notification) { delivered = true })

	require.NotPanics(t, func() {
		e.Publish(models.Notification{Kind: models.NotificationRegisterSuccess})
	})
	assert.True(t, delivered)
	assert.Equal(t, uint64(1), e.Stats().Panicked)
}

func TestEmitter_ConcurrentPublish(t *testing.T) {
	const n = 100
	e := NewEmitter(logger.Nop())

	var mu sync.Mutex
	var count int
	e.Subscribe(func(models.Notification) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Publish(models.Notification{Kind: models.NotificationStatsUpdated})
		}()
	}
	wg.Wait()

	assert.Equal(t, n, count)
	assert.Equal(t, uint64(n), e.Stats().Published)
}
