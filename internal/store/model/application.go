package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Application is a professional's bid on a job posting. The unique index
// on (job_id, professional_sub) is the only thing enforcing
// one-application-per-user-per-job under concurrent applies.
type Application struct {
	ID              uuid.UUID `gorm:"primaryKey"`
	JobID           uuid.UUID `gorm:"uniqueIndex:applications_job_id_professional_sub;not null"`
	ProfessionalSub string    `gorm:"uniqueIndex:applications_job_id_professional_sub;index;not null"`

	// ClinicID is snapshotted from the job at apply time so application
	// queries stay valid independent of job mutation.
	ClinicID string `gorm:"index;not null"`

	Status       string `gorm:"not null"`
	Message      string
	ProposedRate *float64
	Availability string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ApplicationList []Application

func NewApplicationFromID(id uuid.UUID) *Application {
	return &Application{ID: id}
}

func (a Application) String() string {
	val, _ := json.Marshal(a)
	return string(val)
}
