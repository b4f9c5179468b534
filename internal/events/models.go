package events

// JobEvent is published when a posting is created, transitioned or
// deleted.
type JobEvent struct {
	JobID    string `json:"job_id"`
	ClinicID string `json:"clinic_id"`
	JobType  string `json:"job_type,omitempty"`
	Status   string `json:"status,omitempty"`
}

// ApplicationEvent is published when an application is received or its
// status changes.
type ApplicationEvent struct {
	ApplicationID   string `json:"application_id"`
	JobID           string `json:"job_id"`
	ProfessionalSub string `json:"professional_sub"`
	Status          string `json:"status"`
}

// InvitationEvent is published when an invitation is issued or answered.
type InvitationEvent struct {
	InvitationID    string `json:"invitation_id"`
	JobID           string `json:"job_id"`
	ProfessionalSub string `json:"professional_sub"`
	Status          string `json:"status"`
}

// NegotiationEvent is published on every negotiation response.
type NegotiationEvent struct {
	NegotiationID string  `json:"negotiation_id"`
	ApplicationID string  `json:"application_id"`
	Status        string  `json:"status"`
	LastOfferPay  float64 `json:"last_offer_pay"`
	LastOfferFrom string  `json:"last_offer_from"`
}
