package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/lifecycle"
	"github.com/dentamatch/marketplace/internal/matching"
	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
	"github.com/dentamatch/marketplace/pkg/metrics"
)

// JobService owns creation, update and listing of job postings. Status
// transitions live in their own method set, deletion in DeletionService.
type JobService struct {
	store       store.Store
	eventWriter *events.EventProducer
}

func NewJobService(store store.Store, ew *events.EventProducer) *JobService {
	return &JobService{store: store, eventWriter: ew}
}

func (s *JobService) CreateJob(ctx context.Context, form mappers.JobCreateForm) (*model.Job, error) {
	job, err := s.store.Job().Create(ctx, form.ToJob())
	if err != nil {
		return nil, err
	}

	metrics.IncreaseJobsCreatedMetric(job.JobType)
	publishEvent(ctx, s.eventWriter, events.JobMessageKind, events.JobEvent{
		JobID:    job.ID.String(),
		ClinicID: job.ClinicID,
		JobType:  job.JobType,
		Status:   job.Status,
	})

	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := s.store.Job().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, err
	}
	return job, nil
}

// ListJobs returns the clinic's own postings for clinic callers, and
// open role-compatible postings for professional callers.
func (s *JobService) ListJobs(ctx context.Context, user auth.User) (model.JobList, error) {
	filter := store.NewJobQueryFilter()

	if user.IsClinic() {
		filter = filter.ByClinicID(user.ClinicID)
		return s.store.Job().List(ctx, filter)
	}

	filter = filter.ByStatus(string(lifecycle.StatusOpen))
	if professional, err := s.store.Professional().Get(ctx, user.Subject); err == nil {
		role, roleErr := matching.ParseRole(professional.Role)
		if roleErr == nil {
			filter = filter.ByProfessionalRoles(matching.CompatibleJobRoles(role))
		}
	}

	return s.store.Job().List(ctx, filter)
}

// UpdateJob patches a posting's matching criteria or its type-specific
// details. The job type is immutable; completed postings reject any
// change.
func (s *JobService) UpdateJob(ctx context.Context, form mappers.JobUpdateForm) (*model.Job, error) {
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
	if job.Status == string(lifecycle.StatusCompleted) {
		return nil, NewErrJobCompleted(form.JobID)
	}

	if form.ProfessionalRole != nil {
		job.ProfessionalRole = *form.ProfessionalRole
	}
	if form.ShiftSpeciality != nil {
		job.ShiftSpeciality = *form.ShiftSpeciality
	}

	if err := applyDetailsPatch(job, form); err != nil {
		return nil, err
	}

	updated, err := s.store.Job().Update(ctx, *job)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// applyDetailsPatch replaces the job's details variant with the one
// supplied on the form. A variant not matching the job's own type is a
// validation error; TotalDays is always recomputed from the dates.
func applyDetailsPatch(job *model.Job, form mappers.JobUpdateForm) error {
	if form.Temporary == nil && form.MultiDay == nil && form.Permanent == nil {
		return nil
	}

	details := job.Details.Data
	switch job.JobType {
	case model.JobTypeTemporary:
		if form.Temporary == nil {
			return NewErrValidation("job type temporary accepts only the temporary details block")
		}
		details.Temporary = form.Temporary
	case model.JobTypeMultiDayConsulting:
		if form.MultiDay == nil {
			return NewErrValidation("job type multi_day_consulting accepts only the multiDay details block")
		}
		form.MultiDay.TotalDays = len(form.MultiDay.Dates)
		details.MultiDay = form.MultiDay
	case model.JobTypePermanent:
		if form.Permanent == nil {
			return NewErrValidation("job type permanent accepts only the permanent details block")
		}
		details.Permanent = form.Permanent
	}

	job.Details = model.MakeJSONField(details)
	return nil
}
