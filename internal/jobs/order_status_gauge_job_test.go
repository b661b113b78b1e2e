package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pizzastore/internal/core/application/usecases/queries"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error) {
	args := m.Called(ctx, query)
	counts, _ := args.Get(0).(map[order.Status]int64)
	return counts, args.Error(1)
}

type recordingMetrics struct {
	mu     sync.Mutex
	counts []map[order.Status]int64
}

func (*recordingMetrics) OrderPlaced(int64)                             {}
func (*recordingMetrics) OrderIDConflict()                              {}
func (*recordingMetrics) StatusTransitioned(order.Status, order.Status) {}

func (r *recordingMetrics) SetOrdersByStatus(counts map[order.Status]int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = append(r.counts, counts)
}

func (r *recordingMetrics) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.counts)
}

func TestOrderStatusGaugeJob_RunOnce(t *testing.T) {
	counts := map[order.Status]int64{order.Pending: 4, order.Completed: 1}

	t.Run("publishes counts", func(t *testing.T) {
		counter := &MockCounter{}
		counter.On("Handle", mock.Anything, queries.NewUnscopedCountOrdersByStatusQuery()).Return(counts, nil).Once()
		metrics := &recordingMetrics{}

		job := jobs.NewOrderStatusGaugeJob(counter, metrics, "", slog.Default())
		require.NoError(t, job.RunOnce(t.Context()))

		require.Equal(t, 1, metrics.calls())
		assert.Equal(t, counts, metrics.counts[0])
		counter.AssertExpectations(t)
	})

	t.Run("count failure leaves gauge untouched", func(t *testing.T) {
		counter := &MockCounter{}
		counter.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
		metrics := &recordingMetrics{}

		job := jobs.NewOrderStatusGaugeJob(counter, metrics, "", slog.Default())

		require.EqualError(t, job.RunOnce(t.Context()), "db down")
		assert.Zero(t, metrics.calls())
	})
}

func TestOrderStatusGaugeJob_StartAndStop(t *testing.T) {
	counter := &MockCounter{}
	counter.On("Handle", mock.Anything, mock.Anything).Return(map[order.Status]int64{}, nil)
	metrics := &recordingMetrics{}

	job := jobs.NewOrderStatusGaugeJob(counter, metrics, "* * * * * *", slog.Default())
	require.NoError(t, job.Start())

	assert.Eventually(t, func() bool { return metrics.calls() >= 2 }, 3*time.Second, 50*time.Millisecond)
	job.Stop()
}

func TestOrderStatusGaugeJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewOrderStatusGaugeJob(&MockCounter{}, &recordingMetrics{}, "every minute", slog.Default())
	require.Error(t, job.Start())
}

func TestJobManager_StartAllReportsBadSchedule(t *testing.T) {
	manager := jobs.NewJobManager(&MockCounter{}, &recordingMetrics{}, "nope", slog.Default())
	require.ErrorContains(t, manager.StartAll(), "failed to start order status gauge job")
}
