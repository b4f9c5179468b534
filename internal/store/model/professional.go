package model

import (
	"encoding/json"
	"time"
)

// Professional is the stored profile the matching engine checks before an
// invitation can be issued.
type Professional struct {
	Sub       string `gorm:"primaryKey"`
	Role      string `gorm:"not null"`
	FirstName string
	LastName  string
	Email     string
	Phone     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProfessionalList []Professional

func (p Professional) String() string {
	val, _ := json.Marshal(p)
	return string(val)
}
