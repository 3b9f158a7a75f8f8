package jobs

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogReportSchedule runs the report once a minute.
const DefaultBacklogReportSchedule = "@every 1m"

// OrderBacklogReportJob periodically logs how many orders sit in each status.
// It only reads committed orders and never takes order locks.
type OrderBacklogReportJob struct {
	handler  queries.GetOrderBacklogQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogReportJob creates the job. An empty schedule falls back to
// DefaultBacklogReportSchedule; schedules use the six-field cron syntax or a
// descriptor such as "@every 30s".
func NewOrderBacklogReportJob(handler queries.GetOrderBacklogQueryHandler, schedule string, logger *slog.Logger) *OrderBacklogReportJob {
	if schedule == "" {
		schedule = DefaultBacklogReportSchedule
	}
	return &OrderBacklogReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_report_job"),
	}
}

// Run produces one report.
func (j *OrderBacklogReportJob) Run(ctx context.Context) error {
	backlog, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		return err
	}

	attrs := make([]any, 0, 2*len(backlog.Counts)+4)
	attrs = append(attrs, "open", backlog.Open, "total", backlog.Total)
	for _, c := range backlog.Counts {
		attrs = append(attrs, c.Status, c.Count)
	}
	j.logger.InfoContext(ctx, "Order backlog", attrs...)
	return nil
}

// Start schedules the report.
func (j *OrderBacklogReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order backlog report failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderBacklogReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog report job stopped")
}
