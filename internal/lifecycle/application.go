package lifecycle

import "fmt"

// ApplicationStatus values for a professional's application to a job.
// pending is the only non-terminal state.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationAccepted  ApplicationStatus = "accepted"
)

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationPending, ApplicationWithdrawn, ApplicationRejected, ApplicationAccepted:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsApplicationTransitionAllowed permits leaving pending only.
func IsApplicationTransitionAllowed(from, to ApplicationStatus) bool {
	if from != ApplicationPending || to == ApplicationPending {
		return false
	}
	switch to {
	case ApplicationWithdrawn, ApplicationRejected, ApplicationAccepted:
		return true
	}
	return false
}

// IsApplicationInactive reports whether the application no longer blocks
// deletion of its job.
func IsApplicationInactive(s ApplicationStatus) bool {
	return s == ApplicationWithdrawn || s == ApplicationRejected
}

// InvitationStatus values for a clinic's invitation to a professional.
type InvitationStatus string

const (
	InvitationSent      InvitationStatus = "sent"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationDeclined  InvitationStatus = "declined"
	InvitationWithdrawn InvitationStatus = "withdrawn"
)

func ParseInvitationStatus(s string) (InvitationStatus, error) {
	st := InvitationStatus(s)
	switch st {
	case InvitationSent, InvitationAccepted, InvitationDeclined, InvitationWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown invitation status %q", s)
}

// IsInvitationInactive reports whether the invitation no longer blocks
// deletion of its job. Only declined invitations are inactive.
func IsInvitationInactive(s InvitationStatus) bool {
	return s == InvitationDeclined
}

// NegotiationStatus values for a counter-offer thread.
type NegotiationStatus string

const (
	NegotiationOpen     NegotiationStatus = "open"
	NegotiationAccepted NegotiationStatus = "accepted"
	NegotiationRejected NegotiationStatus = "rejected"
)
