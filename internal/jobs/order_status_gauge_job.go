package jobs

import (
	"context"
	"log/slog"
	"sync"

	"pizzastore/internal/core/application/usecases/queries"
	"pizzastore/internal/core/domain/model/order"
	"pizzastore/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultOrderStatusGaugeSchedule runs the refresh every 30 seconds.
const DefaultOrderStatusGaugeSchedule = "*/30 * * * * *"

// OrderStatusCounter is satisfied by queries.CountOrdersByStatusQueryHandler.
type OrderStatusCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error)
}

// OrderStatusGaugeJob periodically publishes the number of orders in each
// status to the metrics sink.
type OrderStatusGaugeJob struct {
	counter  OrderStatusCounter
	metrics  ports.OrderMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	// running guards against overlapping refreshes when a count is slow.
	running sync.Mutex
}

// NewOrderStatusGaugeJob uses DefaultOrderStatusGaugeSchedule for an empty
// schedule. The schedule takes a leading seconds field.
func NewOrderStatusGaugeJob(
	counter OrderStatusCounter,
	metrics ports.OrderMetrics,
	schedule string,
	logger *slog.Logger,
) *OrderStatusGaugeJob {
	if schedule == "" {
		schedule = DefaultOrderStatusGaugeSchedule
	}
	return &OrderStatusGaugeJob{
		counter:  counter,
		metrics:  metrics,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_status_gauge_job"),
	}
}

// Start refreshes once immediately and then on every tick.
func (j *OrderStatusGaugeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order status gauge refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	if err = j.RunOnce(context.Background()); err != nil {
		j.logger.WarnContext(context.Background(), "Initial order status gauge refresh failed", "error", err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status gauge job started", "schedule", j.schedule)
	return nil
}

// RunOnce counts orders by status and sets the gauge. A refresh that finds
// another one in flight is skipped.
func (j *OrderStatusGaugeJob) RunOnce(ctx context.Context) error {
	if !j.running.TryLock() {
		return nil
	}
	defer j.running.Unlock()

	counts, err := j.counter.Handle(ctx, queries.NewUnscopedCountOrdersByStatusQuery())
	if err != nil {
		return err
	}
	j.metrics.SetOrdersByStatus(counts)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *OrderStatusGaugeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status gauge job stopped")
}
