package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/lifecycle"
	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
	"github.com/dentamatch/marketplace/pkg/metrics"
)

// UpdateJobStatus moves a posting through the status state machine.
// Every successful transition appends exactly one history entry; the
// history is never truncated or rewritten.
func (s *JobService) UpdateJobStatus(ctx context.Context, form mappers.StatusUpdateForm) (*model.Job, error) {
	toStatus, err := lifecycle.ParseStatus(form.Status)
	if err != nil {
		return nil, NewErrValidation(err.Error())
	}

	job, err := s.store.Job().Get(ctx, form.JobID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(form.JobID)
		}
		return nil, err
	}

	if job.OwnerSub != form.RequesterSub {
		return nil, NewErrNotJobOwner(form.JobID)
	}

	fromStatus := lifecycle.Status(job.Status)
	if !lifecycle.IsTransitionAllowed(fromStatus, toStatus) {
		return nil, NewErrInvalidTransition(job.Status, form.Status)
	}

	switch toStatus {
	case lifecycle.StatusScheduled:
		if form.AcceptedProfessionalSub == nil || form.ScheduledDate == nil {
			return nil, NewErrMissingScheduleFields()
		}
		job.AcceptedProfessionalSub = form.AcceptedProfessionalSub
		job.ScheduledDate = form.ScheduledDate
	case lifecycle.StatusCompleted:
		now := time.Now()
		job.CompletedAt = &now
		if form.Notes != "" {
			job.CompletionNotes = &form.Notes
		}
	case lifecycle.StatusOpen:
		// reopening clears the scheduling outcome
		job.AcceptedProfessionalSub = nil
		job.ScheduledDate = nil
		job.CompletedAt = nil
		job.CompletionNotes = nil
	}

	job.Status = string(toStatus)
	job.AppendHistory(model.StatusChange{
		FromStatus: string(fromStatus),
		ToStatus:   string(toStatus),
		ChangedAt:  time.Now(),
		ChangedBy:  form.RequesterSub,
		Notes:      form.Notes,
	})

	updated, err := s.store.Job().Update(ctx, *job)
	if err != nil {
		return nil, err
	}

	zap.S().Named("job_service").Infow("job status transition",
		"job_id", job.ID, "from", fromStatus, "to", toStatus, "changed_by", form.RequesterSub)

	metrics.IncreaseStatusTransitionsMetric(string(toStatus))
	publishEvent(ctx, s.eventWriter, events.JobMessageKind, events.JobEvent{
		JobID:    updated.ID.String(),
		ClinicID: updated.ClinicID,
		JobType:  updated.JobType,
		Status:   updated.Status,
	})

	return updated, nil
}
