package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/lifecycle"
	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
)

// NegotiationService manages the counter-offer exchange attached to an
// application. Accepting a negotiation does not move the job itself;
// scheduling stays an explicit status transition by the clinic.
type NegotiationService struct {
	store       store.Store
	eventWriter *events.EventProducer
}

func NewNegotiationService(store store.Store, ew *events.EventProducer) *NegotiationService {
	return &NegotiationService{store: store, eventWriter: ew}
}

// offerSource maps the caller to the offer's origin and verifies the
// caller is one of the application's two parties.
func offerSource(user auth.User, application *model.Application) (string, error) {
	if user.IsProfessional() && user.Subject == application.ProfessionalSub {
		return model.OfferFromProfessional, nil
	}
	if user.IsClinic() && user.ClinicID == application.ClinicID {
		return model.OfferFromClinic, nil
	}
	return "", NewErrNotApplicationParty(application.ID)
}

// CreateNegotiation opens a counter-offer thread on a pending
// application with the caller's proposed pay as the first offer.
func (s *NegotiationService) CreateNegotiation(ctx context.Context, user auth.User, form mappers.NegotiationCreateForm) (*model.Negotiation, error) {
	application, err := s.store.Application().Get(ctx, form.ApplicationID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(form.ApplicationID)
		}
		return nil, err
	}

	from, err := offerSource(user, application)
	if err != nil {
		return nil, err
	}

	if application.Status != string(lifecycle.ApplicationPending) {
		return nil, NewErrApplicationClosed(application.ID, application.Status)
	}

	negotiation, err := s.store.Negotiation().Create(ctx, form.ToNegotiation(application, from))
	if err != nil {
		return nil, err
	}

	s.publishNegotiation(ctx, negotiation)
	return negotiation, nil
}

// RespondNegotiation answers the latest offer: accept and reject close
// the thread, counter appends a new offer and keeps it open. A party
// cannot answer its own last offer.
func (s *NegotiationService) RespondNegotiation(ctx context.Context, user auth.User, applicationID, negotiationID uuid.UUID, action string, counterPay *float64, note string) (*model.Negotiation, error) {
	application, err := s.store.Application().Get(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(applicationID)
		}
		return nil, err
	}

	from, err := offerSource(user, application)
	if err != nil {
		return nil, err
	}

	negotiation, err := s.store.Negotiation().Get(ctx, negotiationID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrNegotiationNotFound(negotiationID)
		}
		return nil, err
	}
	if negotiation.ApplicationID != applicationID {
		return nil, NewErrNegotiationNotFound(negotiationID)
	}

	if negotiation.Status != string(lifecycle.NegotiationOpen) {
		return nil, NewErrNegotiationClosed(negotiationID, negotiation.Status)
	}
	if negotiation.LastOfferFrom == from {
		return nil, NewErrAwaitingOtherParty(negotiationID)
	}

	switch action {
	case "accept":
		negotiation.Status = string(lifecycle.NegotiationAccepted)
	case "reject":
		negotiation.Status = string(lifecycle.NegotiationRejected)
	case "counter":
		if counterPay == nil {
			return nil, NewErrValidation("counter requires counterPay")
		}
		negotiation.AppendOffer(model.Offer{
			Pay:  *counterPay,
			From: from,
			At:   time.Now(),
			Note: note,
		})
	default:
		return nil, NewErrValidation("action must be one of accept, counter, reject")
	}

	updated, err := s.store.Negotiation().Update(ctx, *negotiation)
	if err != nil {
		return nil, err
	}

	s.publishNegotiation(ctx, updated)
	return updated, nil
}

// ListNegotiations returns the threads of one application, visible to
// both parties only.
func (s *NegotiationService) ListNegotiations(ctx context.Context, user auth.User, applicationID uuid.UUID) (model.NegotiationList, error) {
	application, err := s.store.Application().Get(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(applicationID)
		}
		return nil, err
	}

	if _, err := offerSource(user, application); err != nil {
		return nil, err
	}

	return s.store.Negotiation().List(ctx, store.NewNegotiationQueryFilter().ByApplicationID(applicationID))
}

func (s *NegotiationService) publishNegotiation(ctx context.Context, n *model.Negotiation) {
	publishEvent(ctx, s.eventWriter, events.NegotiationMessageKind, events.NegotiationEvent{
		NegotiationID: n.ID.String(),
		ApplicationID: n.ApplicationID.String(),
		Status:        n.Status,
		LastOfferPay:  n.LastOfferPay,
		LastOfferFrom: n.LastOfferFrom,
	})
}
