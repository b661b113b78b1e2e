// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 with a leading seconds field and are
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(countHandler, metrics, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderStatusGaugeJob counts orders per status without a caller identity and
// publishes the result as the orders-by-status gauge. Failures are logged
// and the next tick tries again.
package jobs
