package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/lifecycle"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
	"github.com/dentamatch/marketplace/pkg/metrics"
)

// DeletionService orchestrates safe removal of a posting. The store has
// no cascading delete, so dependent records are handled here: a
// read-only guard phase that can abort cleanly, then a best-effort
// cleanup phase whose partial failure is logged but never rolls back
// the already-deleted job.
type DeletionService struct {
	store       store.Store
	eventWriter *events.EventProducer
}

func NewDeletionService(store store.Store, ew *events.EventProducer) *DeletionService {
	return &DeletionService{store: store, eventWriter: ew}
}

// DeleteJobResult reports the outcome of a deletion. Deleted refers to
// the root job record; RelatedItemsDeleted counts the dependent rows
// actually removed by the cleanup phase.
type DeleteJobResult struct {
	Deleted             bool
	RelatedItemsDeleted int
}

func (s *DeletionService) DeleteJob(ctx context.Context, user auth.User, jobID uuid.UUID, force bool) (*DeleteJobResult, error) {
	logger := zap.S().Named("deletion_service")

	ctx, err := s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	job, err := s.store.Job().Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(jobID)
		}
		return nil, err
	}
	if job.OwnerSub != user.Subject {
		return nil, NewErrNotJobOwner(jobID)
	}

	// scheduled and action_needed postings need explicit resolution
	// first, force cannot bypass them
	if job.Status == string(lifecycle.StatusScheduled) || job.Status == string(lifecycle.StatusActionNeeded) {
		metrics.IncreaseJobsDeletedMetric("blocked")
		return nil, NewErrJobNotDeletable(jobID, job.Status)
	}

	applications, err := s.store.Application().List(ctx, store.NewApplicationQueryFilter().ByJobID(jobID))
	if err != nil {
		return nil, err
	}
	blockingApplications := funk.Filter(applications, func(a model.Application) bool {
		status, err := lifecycle.ParseApplicationStatus(a.Status)
		return err != nil || !lifecycle.IsApplicationInactive(status)
	}).([]model.Application)
	if len(blockingApplications) > 0 {
		metrics.IncreaseJobsDeletedMetric("blocked")
		return nil, NewErrBlockingApplications(jobID, len(blockingApplications))
	}

	invitations, err := s.store.Invitation().List(ctx, store.NewInvitationQueryFilter().ByJobID(jobID))
	if err != nil {
		return nil, err
	}
	blockingInvitations := funk.Filter(invitations, func(i model.Invitation) bool {
		status, err := lifecycle.ParseInvitationStatus(i.Status)
		return err != nil || !lifecycle.IsInvitationInactive(status)
	}).([]model.Invitation)
	if len(blockingInvitations) > 0 {
		metrics.IncreaseJobsDeletedMetric("blocked")
		return nil, NewErrBlockingInvitations(jobID, len(blockingInvitations))
	}

	if job.Status == string(lifecycle.StatusCompleted) && !force {
		metrics.IncreaseJobsDeletedMetric("blocked")
		return nil, NewErrCompletedJobNeedsForce(jobID)
	}

	// all guards passed, the guarded delete below is the atomicity
	// boundary; cleanup runs outside of it
	if err := s.store.Job().Delete(ctx, jobID); err != nil {
		return nil, err
	}
	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	result := &DeleteJobResult{Deleted: true}
	result.RelatedItemsDeleted = s.cleanup(ctx, jobID, applications, invitations)

	metrics.IncreaseJobsDeletedMetric("deleted")
	publishEvent(ctx, s.eventWriter, events.JobMessageKind, events.JobEvent{
		JobID:    jobID.String(),
		ClinicID: job.ClinicID,
		JobType:  job.JobType,
		Status:   "deleted",
	})

	logger.Infow("job deleted", "job_id", jobID, "related_items_deleted", result.RelatedItemsDeleted)
	return result, nil
}

// cleanup batch-deletes the job's dependent records. Failures are
// logged and do not escalate; the count of rows actually removed is
// returned.
func (s *DeletionService) cleanup(ctx context.Context, jobID uuid.UUID, applications model.ApplicationList, invitations model.InvitationList) int {
	logger := zap.S().Named("deletion_service")
	deleted := 0

	negotiations, err := s.store.Negotiation().List(ctx, store.NewNegotiationQueryFilter().ByJobID(jobID))
	if err != nil {
		logger.Errorw("failed to list negotiations for cleanup", "error", err, "job_id", jobID)
	}
	if ids := funk.Map(negotiations, func(n model.Negotiation) uuid.UUID { return n.ID }).([]uuid.UUID); len(ids) > 0 {
		n, err := s.store.Negotiation().BatchDelete(ctx, ids)
		deleted += n
		if err != nil {
			logger.Errorw("negotiation cleanup incomplete", "error", err, "job_id", jobID)
		}
	}

	if ids := funk.Map(applications, func(a model.Application) uuid.UUID { return a.ID }).([]uuid.UUID); len(ids) > 0 {
		n, err := s.store.Application().BatchDelete(ctx, ids)
		deleted += n
		if err != nil {
			logger.Errorw("application cleanup incomplete", "error", err, "job_id", jobID)
		}
	}

	if ids := funk.Map(invitations, func(i model.Invitation) uuid.UUID { return i.ID }).([]uuid.UUID); len(ids) > 0 {
		n, err := s.store.Invitation().BatchDelete(ctx, ids)
		deleted += n
		if err != nil {
			logger.Errorw("invitation cleanup incomplete", "error", err, "job_id", jobID)
		}
	}

	return deleted
}
