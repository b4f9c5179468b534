package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"

	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/lifecycle"
	"github.com/dentamatch/marketplace/internal/matching"
	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
	"github.com/dentamatch/marketplace/pkg/metrics"
)

// InvitationService computes role compatibility and manages invitation
// issuance and responses.
type InvitationService struct {
	store       store.Store
	eventWriter *events.EventProducer
}

func NewInvitationService(store store.Store, ew *events.EventProducer) *InvitationService {
	return &InvitationService{store: store, eventWriter: ew}
}

// InvitationBatchResult reports the per-candidate outcome once the
// eligibility gate has passed. Failed maps a professional sub to the
// reason its individual write failed.
type InvitationBatchResult struct {
	Invitations model.InvitationList
	Failed      map[string]string
}

// Invite targets up to 50 professionals with one call. Existence and
// role compatibility are checked for the whole batch up front: one
// ineligible candidate fails the entire call before any write. Past
// that gate each invitation write is independent and a single failure
// is reported per candidate without aborting the others.
func (s *InvitationService) Invite(ctx context.Context, form mappers.InvitationBatchForm) (*InvitationBatchResult, error) {
	subs := funk.UniqString(form.ProfessionalSubs)
	if len(subs) > maxInvitationBatch {
		return nil, NewErrInvitationLimitExceeded(len(subs))
	}

	job, err := s.store.Job().Get(ctx, form.JobID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(form.JobID)
		}
		return nil, err
	}
	if job.OwnerSub != form.IssuerSub {
		return nil, NewErrNotJobOwner(form.JobID)
	}

	jobRole, err := matching.ParseRole(job.ProfessionalRole)
	if err != nil {
		return nil, NewErrValidation(err.Error())
	}

	professionals, err := s.store.Professional().GetBatch(ctx, subs)
	if err != nil {
		return nil, err
	}
	bySub := make(map[string]model.Professional, len(professionals))
	for _, p := range professionals {
		bySub[p.Sub] = p
	}

	var missing, incompatible []string
	for _, sub := range subs {
		p, found := bySub[sub]
		if !found {
			missing = append(missing, sub)
			continue
		}
		role, roleErr := matching.ParseRole(p.Role)
		if roleErr != nil || !matching.Compatible(jobRole, role) {
			incompatible = append(incompatible, sub)
		}
	}
	if len(missing) > 0 || len(incompatible) > 0 {
		return nil, NewErrIneligibleInvitees(missing, incompatible)
	}

	result := &InvitationBatchResult{Failed: make(map[string]string)}
	for _, sub := range subs {
		invitation, err := s.store.Invitation().Create(ctx, form.ToInvitation(job, sub))
		if err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				result.Failed[sub] = "already invited"
			} else {
				result.Failed[sub] = err.Error()
			}
			continue
		}

		result.Invitations = append(result.Invitations, *invitation)
		metrics.IncreaseInvitationsMetric()
		publishEvent(ctx, s.eventWriter, events.InvitationMessageKind, events.InvitationEvent{
			InvitationID:    invitation.ID.String(),
			JobID:           invitation.JobID.String(),
			ProfessionalSub: invitation.ProfessionalSub,
			Status:          invitation.Status,
		})
	}

	return result, nil
}

// Respond answers an invitation. Only the addressed professional may
// respond, and only while the invitation is still sent.
func (s *InvitationService) Respond(ctx context.Context, user auth.User, id uuid.UUID, accept bool) (*model.Invitation, error) {
	invitation, err := s.store.Invitation().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInvitationNotFound(id)
		}
		return nil, err
	}

	if user.Subject != invitation.ProfessionalSub {
		return nil, NewErrNotInvitationRecipient(id)
	}
	if invitation.Status != string(lifecycle.InvitationSent) {
		return nil, NewErrInvitationAlreadyAnswered(id, invitation.Status)
	}

	if accept {
		invitation.Status = string(lifecycle.InvitationAccepted)
	} else {
		invitation.Status = string(lifecycle.InvitationDeclined)
	}

	updated, err := s.store.Invitation().Update(ctx, *invitation)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.eventWriter, events.InvitationMessageKind, events.InvitationEvent{
		InvitationID:    updated.ID.String(),
		JobID:           updated.JobID.String(),
		ProfessionalSub: updated.ProfessionalSub,
		Status:          updated.Status,
	})

	return updated, nil
}

// ListInvitations returns the professional's own invitations, or the
// invitations of one of the clinic's jobs when jobID is set.
func (s *InvitationService) ListInvitations(ctx context.Context, user auth.User, jobID *uuid.UUID) (model.InvitationList, error) {
	filter := store.NewInvitationQueryFilter()

	if user.IsProfessional() {
		filter = filter.ByProfessionalSub(user.Subject)
		if jobID != nil {
			filter = filter.ByJobID(*jobID)
		}
		return s.store.Invitation().List(ctx, filter)
	}

	if jobID == nil {
		return nil, NewErrValidation("clinic callers must filter invitations by job")
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

	return s.store.Invitation().List(ctx, filter.ByJobID(*jobID))
}
