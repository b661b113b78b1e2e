package jobs

import (
	"fmt"
	"log/slog"

	"pizzastore/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatusGaugeJob *OrderStatusGaugeJob
}

func NewJobManager(
	counter OrderStatusCounter,
	metrics ports.OrderMetrics,
	gaugeSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatusGaugeJob: NewOrderStatusGaugeJob(counter, metrics, gaugeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusGaugeJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status gauge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatusGaugeJob.Stop()
}
