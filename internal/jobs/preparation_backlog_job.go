package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the backlog report every 30 seconds.
const DefaultBacklogSchedule = "*/30 * * * * *"

// PreparationBacklogJob periodically reports the kitchen backlog: how many orders are
// still being prepared and which one has waited longest since its last station update.
type PreparationBacklogJob struct {
	handler  queries.GetPendingPreparationsQueryHandler
	schedule string
	clock    kernel.Clock
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPreparationBacklogJob creates the job. schedule is a cron expression with a
// leading seconds field.
func NewPreparationBacklogJob(
	handler queries.GetPendingPreparationsQueryHandler,
	schedule string,
	clock kernel.Clock,
	logger *slog.Logger,
) *PreparationBacklogJob {
	return &PreparationBacklogJob{
		handler:  handler,
		schedule: schedule,
		clock:    clock,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "preparation_backlog_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
func (j *PreparationBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Preparation backlog job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *PreparationBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Preparation backlog job stopped")
}

func (j *PreparationBacklogJob) report(ctx context.Context) {
	backlog, err := j.handler.Handle(ctx, queries.NewGetPendingPreparationsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Preparation backlog report failed", "error", err)
		return
	}

	if len(backlog) == 0 {
		j.logger.DebugContext(ctx, "Kitchen backlog is empty")
		return
	}

	oldest := backlog[0]
	missing := make([]string, len(oldest.Missing))
	for i, station := range oldest.Missing {
		missing[i] = station.String()
	}

	j.logger.InfoContext(ctx, "Kitchen backlog",
		"pending", len(backlog),
		slog.Group("oldest",
			"order_id", oldest.OrderID.String(),
			"waiting", j.clock.Now().Sub(oldest.UpdatedAt).Round(time.Second).String(),
			"missing", missing,
		),
	)
}
