package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Invitation is clinic-initiated outreach to a specific professional for a
// job. Issuing requires the professional's stored role to be compatible
// with the job's required role; that check lives in the service layer.
type Invitation struct {
	ID              uuid.UUID `gorm:"primaryKey"`
	JobID           uuid.UUID `gorm:"uniqueIndex:invitations_job_id_professional_sub;not null"`
	ProfessionalSub string    `gorm:"uniqueIndex:invitations_job_id_professional_sub;index;not null"`
	IssuerSub       string    `gorm:"not null"`
	ClinicID        string    `gorm:"index;not null"`

	Status string `gorm:"not null"`
	Note   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type InvitationList []Invitation

func NewInvitationFromID(id uuid.UUID) *Invitation {
	return &Invitation{ID: id}
}

func (i Invitation) String() string {
	val, _ := json.Marshal(i)
	return string(val)
}
