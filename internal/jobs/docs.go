// Package jobs provides scheduled background tasks for the order desk.
//
// Jobs run on github.com/robfig/cron/v3 outside the order lifecycle core and
// only read committed state.
//
// # Available Jobs
//
// OrderBacklogReportJob logs the number of orders per status, the open
// backlog and the total on a configurable schedule (default "@every 1m").
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(backlogHandler, cfg.BacklogReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A report that fails is logged and retried on the next tick. An invalid
// schedule fails StartAll.
package jobs
