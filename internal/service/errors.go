package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// maxInvitationBatch bounds a single invitation call.
const maxInvitationBatch = 50

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrJobNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "job")
}

func NewErrApplicationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "application")
}

func NewErrInvitationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "invitation")
}

func NewErrNegotiationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "negotiation")
}

func NewErrProfessionalNotFound(sub string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("professional %s not found", sub)}
}

type ErrForbidden struct {
	error
}

func NewErrNotJobOwner(jobID uuid.UUID) *ErrForbidden {
	return &ErrForbidden{fmt.Errorf("job %s does not belong to the requesting clinic", jobID)}
}

func NewErrNotInvitationRecipient(invitationID uuid.UUID) *ErrForbidden {
	return &ErrForbidden{fmt.Errorf("invitation %s is not addressed to the requesting professional", invitationID)}
}

func NewErrNotApplicationParty(applicationID uuid.UUID) *ErrForbidden {
	return &ErrForbidden{fmt.Errorf("application %s does not involve the requesting user", applicationID)}
}

func NewErrClinicsCannotApply() *ErrForbidden {
	return &ErrForbidden{fmt.Errorf("only professionals may apply to a job")}
}

type ErrValidation struct {
	error
}

func NewErrValidation(message string) *ErrValidation {
	return &ErrValidation{fmt.Errorf("%s", message)}
}

func NewErrMissingScheduleFields() *ErrValidation {
	return NewErrValidation("transition to scheduled requires acceptedProfessionalUserSub and scheduledDate")
}

func NewErrInvitationLimitExceeded(count int) *ErrValidation {
	return NewErrValidation(fmt.Sprintf("cannot invite %d professionals in one call, the limit is %d", count, maxInvitationBatch))
}

// NewErrIneligibleInvitees aggregates every candidate failing the
// existence or compatibility gate; no invitations are written when it
// fires.
func NewErrIneligibleInvitees(missing, incompatible []string) *ErrValidation {
	parts := make([]string, 0, 2)
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("unknown professionals: %s", strings.Join(missing, ", ")))
	}
	if len(incompatible) > 0 {
		parts = append(parts, fmt.Sprintf("role-incompatible professionals: %s", strings.Join(incompatible, ", ")))
	}
	return NewErrValidation(strings.Join(parts, "; "))
}

type ErrInvalidTransition struct {
	error
}

func NewErrInvalidTransition(from, to string) *ErrInvalidTransition {
	return &ErrInvalidTransition{fmt.Errorf("invalid status transition from %s to %s", from, to)}
}

func NewErrInvalidApplicationTransition(from, to string) *ErrInvalidTransition {
	return &ErrInvalidTransition{fmt.Errorf("invalid application status transition from %s to %s", from, to)}
}

type ErrConflict struct {
	error
}

func NewErrJobCompleted(jobID uuid.UUID) *ErrConflict {
	return &ErrConflict{fmt.Errorf("job %s is completed and can no longer be updated", jobID)}
}

func NewErrJobNotOpen(jobID uuid.UUID, status string) *ErrConflict {
	return &ErrConflict{fmt.Errorf("job %s is %s and no longer accepts applications", jobID, status)}
}

func NewErrAlreadyApplied(jobID uuid.UUID, sub string) *ErrConflict {
	return &ErrConflict{fmt.Errorf("professional %s already applied to job %s", sub, jobID)}
}

func NewErrInvitationAlreadyAnswered(invitationID uuid.UUID, status string) *ErrConflict {
	return &ErrConflict{fmt.Errorf("invitation %s is %s and can no longer be answered", invitationID, status)}
}

func NewErrNegotiationClosed(negotiationID uuid.UUID, status string) *ErrConflict {
	return &ErrConflict{fmt.Errorf("negotiation %s is already %s", negotiationID, status)}
}

func NewErrAwaitingOtherParty(negotiationID uuid.UUID) *ErrConflict {
	return &ErrConflict{fmt.Errorf("negotiation %s is awaiting a response from the other party", negotiationID)}
}

func NewErrApplicationClosed(applicationID uuid.UUID, status string) *ErrConflict {
	return &ErrConflict{fmt.Errorf("application %s is %s and can no longer be negotiated", applicationID, status)}
}

func NewErrJobNotDeletable(jobID uuid.UUID, status string) *ErrConflict {
	return &ErrConflict{fmt.Errorf("job %s is %s and must be resolved before deletion", jobID, status)}
}

func NewErrBlockingApplications(jobID uuid.UUID, count int) *ErrConflict {
	return &ErrConflict{fmt.Errorf("job %s has %d active application(s) that must be withdrawn or rejected before deletion", jobID, count)}
}

func NewErrBlockingInvitations(jobID uuid.UUID, count int) *ErrConflict {
	return &ErrConflict{fmt.Errorf("job %s has %d undeclined invitation(s) that must be resolved before deletion", jobID, count)}
}

func NewErrCompletedJobNeedsForce(jobID uuid.UUID) *ErrConflict {
	return &ErrConflict{fmt.Errorf("job %s is completed; deleting it permanently removes its history, retry with force=true to confirm", jobID)}
}
