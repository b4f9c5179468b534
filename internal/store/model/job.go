package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Job types supported by the marketplace. The type is immutable after
// creation and selects which details variant is mandatory.
const (
	JobTypeTemporary          = "temporary"
	JobTypeMultiDayConsulting = "multi_day_consulting"
	JobTypePermanent          = "permanent"
)

// Employment types for permanent positions.
const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"
)

// Offer sources.
const (
	OfferFromClinic       = "clinic"
	OfferFromProfessional = "professional"
)

// TemporaryDetails is the payload of a single-day temporary job.
type TemporaryDetails struct {
	Date       time.Time `json:"date"`
	Hours      int       `json:"hours"`
	HourlyRate float64   `json:"hourlyRate"`
}

// MultiDayDetails is the payload of a multi-day consulting job.
// TotalDays is always recomputed from Dates.
type MultiDayDetails struct {
	Dates       []time.Time `json:"dates"`
	HoursPerDay int         `json:"hoursPerDay"`
	HourlyRate  float64     `json:"hourlyRate"`
	TotalDays   int         `json:"totalDays"`
}

// PermanentDetails is the payload of a permanent position.
type PermanentDetails struct {
	EmploymentType string   `json:"employmentType"`
	SalaryMin      float64  `json:"salaryMin"`
	SalaryMax      float64  `json:"salaryMax"`
	Benefits       []string `json:"benefits"`
}

// JobDetails is a tagged union: exactly one variant is set, matching the
// job's type. Variants are validated at construction, never patched
// field-by-field.
type JobDetails struct {
	Temporary *TemporaryDetails `json:"temporary,omitempty"`
	MultiDay  *MultiDayDetails  `json:"multiDay,omitempty"`
	Permanent *PermanentDetails `json:"permanent,omitempty"`
}

// ClinicSnapshot is the clinic profile captured at job creation time.
// It is denormalized on purpose and never live-joined.
type ClinicSnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
}

// StatusChange is one append-only entry of a job's status history.
type StatusChange struct {
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ChangedAt  time.Time `json:"changedAt"`
	ChangedBy  string    `json:"changedBy"`
	Notes      string    `json:"notes,omitempty"`
}

type Job struct {
	ID               uuid.UUID `gorm:"primaryKey"`
	ClinicID         string    `gorm:"index;not null"`
	OwnerSub         string    `gorm:"index;not null"`
	JobType          string    `gorm:"not null"`
	ProfessionalRole string    `gorm:"not null"`
	ShiftSpeciality  string
	Status           string `gorm:"index;not null"`

	Details        *JSONField[JobDetails]     `gorm:"not null"`
	ClinicSnapshot *JSONField[ClinicSnapshot] `gorm:"not null"`
	StatusHistory  *JSONField[[]StatusChange]

	AcceptedProfessionalSub *string
	ScheduledDate           *time.Time
	CompletedAt             *time.Time
	CompletionNotes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type JobList []Job

func NewJobFromID(id uuid.UUID) *Job {
	return &Job{ID: id}
}

func (j Job) String() string {
	val, _ := json.Marshal(j)
	return string(val)
}

// History returns the recorded status changes, oldest first.
func (j *Job) History() []StatusChange {
	if j.StatusHistory == nil {
		return nil
	}
	return j.StatusHistory.Data
}

// AppendHistory records one status change. History is append-only and
// never truncated or rewritten.
func (j *Job) AppendHistory(entry StatusChange) {
	if j.StatusHistory == nil {
		j.StatusHistory = MakeJSONField([]StatusChange{})
	}
	j.StatusHistory.Data = append(j.StatusHistory.Data, entry)
}
