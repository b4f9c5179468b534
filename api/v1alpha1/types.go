// Package v1alpha1 contains the JSON types exposed by the marketplace API.
package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// Error is the body returned on every failed request.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ClinicDetails is the clinic profile snapshot supplied at job creation.
type ClinicDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
}

// TemporaryJobFields is the payload of a single-day temporary job.
type TemporaryJobFields struct {
	Date       time.Time `json:"date" validate:"required,future_date"`
	Hours      int       `json:"hours" validate:"required,shift_hours"`
	HourlyRate float64   `json:"hourlyRate" validate:"required,min=10,max=200"`
}

// MultiDayJobFields is the payload of a multi-day consulting job.
// TotalDays is derived server-side from Dates and ignored on input.
type MultiDayJobFields struct {
	Dates       []time.Time `json:"dates" validate:"required,min=1,max=30,future_dates"`
	HoursPerDay int         `json:"hoursPerDay" validate:"required,shift_hours"`
	HourlyRate  float64     `json:"hourlyRate" validate:"required,min=10,max=300"`
}

// PermanentJobFields is the payload of a permanent position.
type PermanentJobFields struct {
	EmploymentType string   `json:"employmentType" validate:"required,employment_type"`
	SalaryMin      float64  `json:"salaryMin" validate:"required,min=20000,max=500000"`
	SalaryMax      float64  `json:"salaryMax" validate:"required,gtfield=SalaryMin"`
	Benefits       []string `json:"benefits" validate:"required,min=1"`
}

// JobCreate is the request body of POST /jobs/{type}. Exactly one of the
// type-specific blocks must be set, matching the path's job type.
type JobCreate struct {
	ProfessionalRole string         `json:"professionalRole" validate:"required,professional_role"`
	ShiftSpeciality  string         `json:"shiftSpeciality"`
	Clinic           *ClinicDetails `json:"clinic,omitempty"`

	Temporary *TemporaryJobFields `json:"temporary,omitempty"`
	MultiDay  *MultiDayJobFields  `json:"multiDay,omitempty"`
	Permanent *PermanentJobFields `json:"permanent,omitempty"`
}

// JobUpdate is the request body of PUT /jobs/{id}. The job type itself is
// immutable; only fields of the job's own variant may be patched.
type JobUpdate struct {
	ProfessionalRole *string `json:"professionalRole,omitempty" validate:"omitempty,professional_role"`
	ShiftSpeciality  *string `json:"shiftSpeciality,omitempty"`

	Temporary *TemporaryJobFields `json:"temporary,omitempty"`
	MultiDay  *MultiDayJobFields  `json:"multiDay,omitempty"`
	Permanent *PermanentJobFields `json:"permanent,omitempty"`
}

// StatusChange is one entry of a job's status history.
type StatusChange struct {
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ChangedAt  time.Time `json:"changedAt"`
	ChangedBy  string    `json:"changedBy"`
	Notes      string    `json:"notes,omitempty"`
}

// Job is the API representation of a job posting.
type Job struct {
	Id               uuid.UUID      `json:"id"`
	ClinicId         string         `json:"clinicId"`
	JobType          string         `json:"jobType"`
	ProfessionalRole string         `json:"professionalRole"`
	ShiftSpeciality  string         `json:"shiftSpeciality,omitempty"`
	Status           string         `json:"status"`
	Clinic           ClinicDetails  `json:"clinic"`
	StatusHistory    []StatusChange `json:"statusHistory,omitempty"`

	Temporary *TemporaryJobFields `json:"temporary,omitempty"`
	MultiDay  *MultiDayJobView    `json:"multiDay,omitempty"`
	Permanent *PermanentJobFields `json:"permanent,omitempty"`

	AcceptedProfessionalSub *string    `json:"acceptedProfessionalUserSub,omitempty"`
	ScheduledDate           *time.Time `json:"scheduledDate,omitempty"`
	CompletedAt             *time.Time `json:"completedAt,omitempty"`
	CompletionNotes         *string    `json:"completionNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MultiDayJobView adds the derived TotalDays to the multi-day payload.
type MultiDayJobView struct {
	MultiDayJobFields
	TotalDays int `json:"totalDays"`
}

type JobList []Job

// StatusUpdate is the request body of PUT /jobs/{id}/status.
type StatusUpdate struct {
	Status                  string     `json:"status" validate:"required"`
	AcceptedProfessionalSub *string    `json:"acceptedProfessionalUserSub,omitempty"`
	ScheduledDate           *time.Time `json:"scheduledDate,omitempty"`
	Notes                   string     `json:"notes,omitempty"`
}

// InvitationCreate is the request body of POST /jobs/{id}/invitations.
type InvitationCreate struct {
	ProfessionalSubs []string `json:"professionalUserSubs" validate:"required,min=1"`
	Note             string   `json:"note,omitempty"`
}

// Invitation is the API representation of a job invitation.
type Invitation struct {
	Id              uuid.UUID `json:"id"`
	JobId           uuid.UUID `json:"jobId"`
	ProfessionalSub string    `json:"professionalUserSub"`
	ClinicId        string    `json:"clinicId"`
	Status          string    `json:"status"`
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type InvitationList []Invitation

// InvitationBatchResult reports the per-candidate outcome of a batch
// invitation call after the all-or-nothing eligibility gate has passed.
type InvitationBatchResult struct {
	Invitations []Invitation      `json:"invitations"`
	Failed      map[string]string `json:"failed,omitempty"`
}

// InvitationResponse is the request body of POST /invitations/{id}/response.
type InvitationResponse struct {
	Response string `json:"response" validate:"required,oneof=accept decline"`
}

// ApplicationCreate is the request body of POST /applications/{jobId}.
type ApplicationCreate struct {
	Message      string   `json:"message,omitempty"`
	ProposedRate *float64 `json:"proposedRate,omitempty" validate:"omitempty,gt=0"`
	Availability string   `json:"availability,omitempty"`
}

// Application is the API representation of a job application.
type Application struct {
	Id              uuid.UUID `json:"id"`
	JobId           uuid.UUID `json:"jobId"`
	ProfessionalSub string    `json:"professionalUserSub"`
	ClinicId        string    `json:"clinicId"`
	Status          string    `json:"status"`
	Message         string    `json:"message,omitempty"`
	ProposedRate    *float64  `json:"proposedRate,omitempty"`
	Availability    string    `json:"availability,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ApplicationList []Application

// ApplicationStatusUpdate is the request body of PUT /applications/{id}/status.
type ApplicationStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=withdrawn rejected accepted"`
}

// NegotiationCreate is the request body of POST /applications/{id}/negotiations.
type NegotiationCreate struct {
	ProposedPay float64 `json:"proposedPay" validate:"required,gt=0"`
	Note        string  `json:"note,omitempty"`
}

// NegotiationResponse is the request body of
// PUT /applications/{id}/negotiations/{negId}/response.
type NegotiationResponse struct {
	Action     string   `json:"action" validate:"required,oneof=accept counter reject"`
	CounterPay *float64 `json:"counterPay,omitempty" validate:"omitempty,gt=0"`
	Note       string   `json:"note,omitempty"`
}

// Offer is one entry of a negotiation thread.
type Offer struct {
	Pay  float64   `json:"pay"`
	From string    `json:"from"`
	At   time.Time `json:"at"`
	Note string    `json:"note,omitempty"`
}

// Negotiation is the API representation of a counter-offer thread.
type Negotiation struct {
	Id            uuid.UUID `json:"id"`
	ApplicationId uuid.UUID `json:"applicationId"`
	JobId         uuid.UUID `json:"jobId"`
	Status        string    `json:"status"`
	LastOfferPay  float64   `json:"lastOfferPay"`
	LastOfferFrom string    `json:"lastOfferFrom"`
	Offers        []Offer   `json:"offers,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProfessionalUpdate is the request body of PUT /professionals/me.
type ProfessionalUpdate struct {
	Role      string `json:"role" validate:"required,professional_role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
}

// Professional is the API representation of a stored profile.
type Professional struct {
	Sub       string    `json:"sub"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeleteJobResult is the body returned by DELETE /jobs/{id}.
type DeleteJobResult struct {
	Deleted             bool `json:"deleted"`
	RelatedItemsDeleted int  `json:"relatedItemsDeleted"`
}
