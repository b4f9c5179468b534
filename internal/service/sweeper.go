package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dentamatch/marketplace/internal/lifecycle"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
	"github.com/dentamatch/marketplace/pkg/metrics"
)

const sweeperActor = "system"

// OverdueSweeper periodically moves scheduled postings whose shift date
// has passed without completion into action_needed, so clinics get
// prompted to resolve them.
type OverdueSweeper struct {
	store store.Store
	cron  *cron.Cron
}

func NewOverdueSweeper(store store.Store) *OverdueSweeper {
	return &OverdueSweeper{store: store, cron: cron.New()}
}

// Start schedules the sweep with the given cron spec, e.g. "@every 1h".
func (s *OverdueSweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		s.Sweep(context.Background())
	}); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *OverdueSweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep runs one pass. Failures on individual postings are logged and
// do not stop the rest of the batch.
func (s *OverdueSweeper) Sweep(ctx context.Context) {
	logger := zap.S().Named("overdue_sweeper")

	jobs, err := s.store.Job().List(ctx, store.NewJobQueryFilter().
		ByStatus(string(lifecycle.StatusScheduled)).
		ByScheduledBefore(time.Now()))
	if err != nil {
		logger.Errorw("failed to list overdue jobs", "error", err)
		return
	}

	for i := range jobs {
		job := jobs[i]
		job.Status = string(lifecycle.StatusActionNeeded)
		job.AppendHistory(model.StatusChange{
			FromStatus: string(lifecycle.StatusScheduled),
			ToStatus:   string(lifecycle.StatusActionNeeded),
			ChangedAt:  time.Now(),
			ChangedBy:  sweeperActor,
			Notes:      "scheduled date passed without completion",
		})

		if _, err := s.store.Job().Update(ctx, job); err != nil {
			logger.Errorw("failed to flag overdue job", "error", err, "job_id", job.ID)
			continue
		}

		metrics.IncreaseStatusTransitionsMetric(string(lifecycle.StatusActionNeeded))
		logger.Infow("overdue job flagged", "job_id", job.ID, "scheduled_date", job.ScheduledDate)
	}
}
