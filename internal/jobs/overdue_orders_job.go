package jobs

import (
	"context"
	"time"

	"inventory/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultOverdueScanSchedule runs the scan every 15 minutes (cron with seconds).
const DefaultOverdueScanSchedule = "0 */15 * * * *"

type overdueOrdersReader interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.GetOverdueOrdersQueryResponse, error)
}

type overdueRecorder interface {
	SetOverdue(businessID string, count int64)
}

// OverdueOrdersJob periodically counts, per business, orders dated before
// today that are not completed. It only reads.
type OverdueOrdersJob struct {
	reader   overdueOrdersReader
	recorder overdueRecorder
	schedule string
	now      func() time.Time
	timeout  time.Duration
	cron     *cron.Cron
	logger   zerolog.Logger
}

func NewOverdueOrdersJob(
	reader overdueOrdersReader,
	recorder overdueRecorder,
	schedule string,
	logger zerolog.Logger,
) *OverdueOrdersJob {
	if schedule == "" {
		schedule = DefaultOverdueScanSchedule
	}
	return &OverdueOrdersJob{
		reader:   reader,
		recorder: recorder,
		schedule: schedule,
		now:      time.Now,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With().Str("component", "overdue_orders_job").Logger(),
	}
}

// Start registers the scan on its schedule. An invalid schedule is returned
// as an error and nothing is started.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		_ = j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("overdue orders job started")
	return nil
}

// Run performs one scan.
func (j *OverdueOrdersJob) Run(ctx context.Context) error {
	result, err := j.reader.Handle(ctx, queries.NewGetOverdueOrdersQuery(j.now()))
	if err != nil {
		j.logger.Error().Err(err).Msg("overdue orders scan failed")
		return err
	}

	for _, r := range result {
		j.recorder.SetOverdue(r.BusinessID.String(), r.Overdue)
		if r.Overdue > 0 {
			j.logger.Warn().
				Stringer("business_id", r.BusinessID).
				Str("business", r.BusinessName).
				Int64("overdue", r.Overdue).
				Msg("business has overdue orders")
		}
	}
	j.logger.Debug().Int("businesses", len(result)).Msg("overdue orders scan finished")
	return nil
}

// Stop stops the schedule and waits for a running scan to return.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("overdue orders job stopped")
}
