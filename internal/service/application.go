package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/lifecycle"
	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
	"github.com/dentamatch/marketplace/pkg/metrics"
)

// ApplicationService manages a professional's bid on a posting.
type ApplicationService struct {
	store       store.Store
	eventWriter *events.EventProducer
}

func NewApplicationService(store store.Store, ew *events.EventProducer) *ApplicationService {
	return &ApplicationService{store: store, eventWriter: ew}
}

// Apply creates an application after checking, in order, that the job
// exists, that it still accepts applications, and that the professional
// has not applied before. Two concurrent applies race on the last
// check; the store's unique index catches the loser.
func (s *ApplicationService) Apply(ctx context.Context, form mappers.ApplicationCreateForm) (*model.Application, error) {
	job, err := s.store.Job().Get(ctx, form.JobID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(form.JobID)
		}
		return nil, err
	}

	if job.Status != string(lifecycle.StatusOpen) {
		return nil, NewErrJobNotOpen(form.JobID, job.Status)
	}

	existing, err := s.store.Application().List(ctx, store.NewApplicationQueryFilter().
		ByJobID(form.JobID).
		ByProfessionalSub(form.ProfessionalSub))
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, NewErrAlreadyApplied(form.JobID, form.ProfessionalSub)
	}

	application, err := s.store.Application().Create(ctx, form.ToApplication(job))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrAlreadyApplied(form.JobID, form.ProfessionalSub)
		}
		return nil, err
	}

	metrics.IncreaseApplicationsMetric()
	publishEvent(ctx, s.eventWriter, events.ApplicationMessageKind, events.ApplicationEvent{
		ApplicationID:   application.ID.String(),
		JobID:           application.JobID.String(),
		ProfessionalSub: application.ProfessionalSub,
		Status:          application.Status,
	})

	return application, nil
}

func (s *ApplicationService) GetApplication(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	application, err := s.store.Application().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(id)
		}
		return nil, err
	}
	return application, nil
}

// ListApplications returns the professional's own applications, or the
// applications of one of the clinic's jobs when jobID is set.
func (s *ApplicationService) ListApplications(ctx context.Context, user auth.User, jobID *uuid.UUID) (model.ApplicationList, error) {
	filter := store.NewApplicationQueryFilter()

	if user.IsProfessional() {
		filter = filter.ByProfessionalSub(user.Subject)
		if jobID != nil {
			filter = filter.ByJobID(*jobID)
		}
		return s.store.Application().List(ctx, filter)
	}

	if jobID == nil {
		return nil, NewErrValidation("clinic callers must filter applications by job")
	}

	job, err := s.store.Job().Get(ctx, *jobID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(*jobID)
		}
		return nil, err
	}
	if job.ClinicID != user.ClinicID {
		return nil, NewErrNotJobOwner(*jobID)
	}

	return s.store.Application().List(ctx, filter.ByJobID(*jobID))
}

// UpdateApplicationStatus advances the application's own state machine,
// independent of the job's. Professionals may withdraw their own
// application; the owning clinic may accept or reject it.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, user auth.User, id uuid.UUID, status string) (*model.Application, error) {
	toStatus, err := lifecycle.ParseApplicationStatus(status)
	if err != nil {
		return nil, NewErrValidation(err.Error())
	}

	application, err := s.store.Application().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(id)
		}
		return nil, err
	}

	switch toStatus {
	case lifecycle.ApplicationWithdrawn:
		if !user.IsProfessional() || user.Subject != application.ProfessionalSub {
			return nil, NewErrNotApplicationParty(id)
		}
	case lifecycle.ApplicationAccepted, lifecycle.ApplicationRejected:
		if !user.IsClinic() || user.ClinicID != application.ClinicID {
			return nil, NewErrNotApplicationParty(id)
		}
	default:
		return nil, NewErrInvalidApplicationTransition(application.Status, status)
	}

	fromStatus := lifecycle.ApplicationStatus(application.Status)
	if !lifecycle.IsApplicationTransitionAllowed(fromStatus, toStatus) {
		return nil, NewErrInvalidApplicationTransition(application.Status, status)
	}

	application.Status = string(toStatus)
	updated, err := s.store.Application().Update(ctx, *application)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.eventWriter, events.ApplicationMessageKind, events.ApplicationEvent{
		ApplicationID:   updated.ID.String(),
		JobID:           updated.JobID.String(),
		ProfessionalSub: updated.ProfessionalSub,
		Status:          updated.Status,
	})

	return updated, nil
}
