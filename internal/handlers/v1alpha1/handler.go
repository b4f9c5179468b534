package v1alpha1

import (
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/handlers/validator"
	"github.com/dentamatch/marketplace/internal/service"
	"github.com/dentamatch/marketplace/internal/store"
)

// ServiceHandler exposes the marketplace workflows over HTTP.
type ServiceHandler struct {
	jobSrv          *service.JobService
	applicationSrv  *service.ApplicationService
	invitationSrv   *service.InvitationService
	negotiationSrv  *service.NegotiationService
	deletionSrv     *service.DeletionService
	professionalSrv *service.ProfessionalService
	validator       *validator.Validator
}

func NewServiceHandler(store store.Store, ew *events.EventProducer) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(append(validator.NewJobValidationRules(), validator.NewProfessionalValidationRules()...)...)

	return &ServiceHandler{
		jobSrv:          service.NewJobService(store, ew),
		applicationSrv:  service.NewApplicationService(store, ew),
		invitationSrv:   service.NewInvitationService(store, ew),
		negotiationSrv:  service.NewNegotiationService(store, ew),
		deletionSrv:     service.NewDeletionService(store, ew),
		professionalSrv: service.NewProfessionalService(store),
		validator:       v,
	}
}
