package mappers

import (
	"time"

	"github.com/google/uuid"

	"github.com/dentamatch/marketplace/internal/lifecycle"
	"github.com/dentamatch/marketplace/internal/store/model"
)

// JobCreateForm carries a validated create request into the service
// layer. Exactly one details variant is set, matching JobType.
type JobCreateForm struct {
	ClinicID         string
	OwnerSub         string
	JobType          string
	ProfessionalRole string
	ShiftSpeciality  string
	Clinic           model.ClinicSnapshot
	Details          model.JobDetails
}

func (f JobCreateForm) ToJob() model.Job {
	details := f.Details
	if details.MultiDay != nil {
		details.MultiDay.TotalDays = len(details.MultiDay.Dates)
	}
	return model.Job{
		ID:               uuid.New(),
		ClinicID:         f.ClinicID,
		OwnerSub:         f.OwnerSub,
		JobType:          f.JobType,
		ProfessionalRole: f.ProfessionalRole,
		ShiftSpeciality:  f.ShiftSpeciality,
		Status:           string(lifecycle.StatusOpen),
		Details:          model.MakeJSONField(details),
		ClinicSnapshot:   model.MakeJSONField(f.Clinic),
		StatusHistory:    model.MakeJSONField([]model.StatusChange{}),
	}
}

// JobUpdateForm patches a posting. Nil fields are left untouched; a
// details variant, when present, must match the job's own type.
type JobUpdateForm struct {
	JobID            uuid.UUID
	RequesterSub     string
	ProfessionalRole *string
	ShiftSpeciality  *string

	Temporary *model.TemporaryDetails
	MultiDay  *model.MultiDayDetails
	Permanent *model.PermanentDetails
}

// StatusUpdateForm is one transition request against the posting state
// machine.
type StatusUpdateForm struct {
	JobID                   uuid.UUID
	RequesterSub            string
	Status                  string
	AcceptedProfessionalSub *string
	ScheduledDate           *time.Time
	Notes                   string
}

// ApplicationCreateForm carries a professional's apply request.
type ApplicationCreateForm struct {
	JobID           uuid.UUID
	ProfessionalSub string
	Message         string
	ProposedRate    *float64
	Availability    string
}

// ToApplication snapshots the clinic identifier from the job so the
// application stays queryable independent of later job mutation.
func (f ApplicationCreateForm) ToApplication(job *model.Job) model.Application {
	return model.Application{
		ID:              uuid.New(),
		JobID:           f.JobID,
		ProfessionalSub: f.ProfessionalSub,
		ClinicID:        job.ClinicID,
		Status:          string(lifecycle.ApplicationPending),
		Message:         f.Message,
		ProposedRate:    f.ProposedRate,
		Availability:    f.Availability,
	}
}

// InvitationBatchForm targets up to the batch limit of professionals
// for one job.
type InvitationBatchForm struct {
	JobID            uuid.UUID
	IssuerSub        string
	ProfessionalSubs []string
	Note             string
}

func (f InvitationBatchForm) ToInvitation(job *model.Job, professionalSub string) model.Invitation {
	return model.Invitation{
		ID:              uuid.New(),
		JobID:           f.JobID,
		ProfessionalSub: professionalSub,
		IssuerSub:       f.IssuerSub,
		ClinicID:        job.ClinicID,
		Status:          string(lifecycle.InvitationSent),
		Note:            f.Note,
	}
}

// NegotiationCreateForm opens a counter-offer thread on an application.
type NegotiationCreateForm struct {
	ApplicationID uuid.UUID
	ProposedPay   float64
	Note          string
}

func (f NegotiationCreateForm) ToNegotiation(application *model.Application, from string) model.Negotiation {
	n := model.Negotiation{
		ID:            uuid.New(),
		ApplicationID: f.ApplicationID,
		JobID:         application.JobID,
		Status:        string(lifecycle.NegotiationOpen),
	}
	n.AppendOffer(model.Offer{
		Pay:  f.ProposedPay,
		From: from,
		At:   time.Now(),
		Note: f.Note,
	})
	return n
}

// ProfessionalForm upserts the requesting professional's stored profile.
type ProfessionalForm struct {
	Sub       string
	Role      string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (f ProfessionalForm) ToProfessional() model.Professional {
	return model.Professional{
		Sub:       f.Sub,
		Role:      f.Role,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
	}
}
