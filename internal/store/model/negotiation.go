package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Offer is one entry of a negotiation's counter-offer exchange.
type Offer struct {
	Pay  float64   `json:"pay"`
	From string    `json:"from"`
	At   time.Time `json:"at"`
	Note string    `json:"note,omitempty"`
}

// Negotiation is a counter-offer thread attached to one application.
type Negotiation struct {
	ID            uuid.UUID `gorm:"primaryKey"`
	ApplicationID uuid.UUID `gorm:"index;not null"`
	JobID         uuid.UUID `gorm:"index;not null"`

	Status        string  `gorm:"not null"`
	LastOfferPay  float64 `gorm:"not null"`
	LastOfferFrom string  `gorm:"not null"`
	Offers        *JSONField[[]Offer]

	CreatedAt time.Time
	UpdatedAt time.Time
}

type NegotiationList []Negotiation

func NewNegotiationFromID(id uuid.UUID) *Negotiation {
	return &Negotiation{ID: id}
}

func (n Negotiation) String() string {
	val, _ := json.Marshal(n)
	return string(val)
}

// AppendOffer records one offer on the thread and updates the last-offer
// fields.
func (n *Negotiation) AppendOffer(offer Offer) {
	if n.Offers == nil {
		n.Offers = MakeJSONField([]Offer{})
	}
	n.Offers.Data = append(n.Offers.Data, offer)
	n.LastOfferPay = offer.Pay
	n.LastOfferFrom = offer.From
}
