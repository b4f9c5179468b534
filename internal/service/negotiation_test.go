package service_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dentamatch/marketplace/internal/config"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/service"
	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
)

var _ = Describe("negotiation service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		srv    *service.NegotiationService
	)

	newPendingApplication := func(professionalSub string) *model.Application {
		application, err := s.Application().Create(context.TODO(), model.Application{
			ID:              uuid.New(),
			JobID:           uuid.New(),
			ProfessionalSub: professionalSub,
			ClinicID:        "clinic-1",
			Status:          "pending",
		})
		Expect(err).To(BeNil())
		return application
	}

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
		srv = service.NewNegotiationService(s, events.NewEventProducer(newTestWriter()))
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM applications;")
		gormdb.Exec("DELETE FROM negotiations;")
	})

	Context("create", func() {
		It("opens a thread with the caller's offer as the first entry", func() {
			application := newPendingApplication("pro-1")

			negotiation, err := srv.CreateNegotiation(context.TODO(), professionalUser("pro-1"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
				Note:          "rate for weekend shifts",
			})
			Expect(err).To(BeNil())
			Expect(negotiation.Status).To(Equal("open"))
			Expect(negotiation.LastOfferPay).To(Equal(float64(65)))
			Expect(negotiation.LastOfferFrom).To(Equal(model.OfferFromProfessional))
			Expect(negotiation.Offers.Data).To(HaveLen(1))
		})

		It("refuses a thread on a closed application", func() {
			application := newPendingApplication("pro-1")
			application.Status = "withdrawn"
			_, err := s.Application().Update(context.TODO(), *application)
			Expect(err).To(BeNil())

			_, err = srv.CreateNegotiation(context.TODO(), professionalUser("pro-1"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))
		})

		It("refuses a caller that is not a party to the application", func() {
			application := newPendingApplication("pro-1")

			_, err := srv.CreateNegotiation(context.TODO(), professionalUser("pro-2"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})
	})

	Context("respond", func() {
		It("counters with a new offer and keeps the thread open", func() {
			application := newPendingApplication("pro-1")
			negotiation, err := srv.CreateNegotiation(context.TODO(), professionalUser("pro-1"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
			})
			Expect(err).To(BeNil())

			counter := 60.0
			updated, err := srv.RespondNegotiation(context.TODO(), clinicUser(), application.ID, negotiation.ID, "counter", &counter, "")
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal("open"))
			Expect(updated.LastOfferPay).To(Equal(60.0))
			Expect(updated.LastOfferFrom).To(Equal(model.OfferFromClinic))
			Expect(updated.Offers.Data).To(HaveLen(2))
		})

		It("blocks a party from answering its own last offer", func() {
			application := newPendingApplication("pro-1")
			negotiation, err := srv.CreateNegotiation(context.TODO(), professionalUser("pro-1"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
			})
			Expect(err).To(BeNil())

			_, err = srv.RespondNegotiation(context.TODO(), professionalUser("pro-1"), application.ID, negotiation.ID, "accept", nil, "")
			Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))
		})

		It("closes the thread on accept and rejects further responses", func() {
			application := newPendingApplication("pro-1")
			negotiation, err := srv.CreateNegotiation(context.TODO(), professionalUser("pro-1"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
			})
			Expect(err).To(BeNil())

			accepted, err := srv.RespondNegotiation(context.TODO(), clinicUser(), application.ID, negotiation.ID, "accept", nil, "")
			Expect(err).To(BeNil())
			Expect(accepted.Status).To(Equal("accepted"))

			_, err = srv.RespondNegotiation(context.TODO(), professionalUser("pro-1"), application.ID, negotiation.ID, "reject", nil, "")
			Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))
		})

		It("requires a pay value on counter", func() {
			application := newPendingApplication("pro-1")
			negotiation, err := srv.CreateNegotiation(context.TODO(), professionalUser("pro-1"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
			})
			Expect(err).To(BeNil())

			_, err = srv.RespondNegotiation(context.TODO(), clinicUser(), application.ID, negotiation.ID, "counter", nil, "")
			Expect(err).To(BeAssignableToTypeOf(&service.ErrValidation{}))
		})

		It("hides a negotiation attached to a different application", func() {
			application := newPendingApplication("pro-1")
			other := newPendingApplication("pro-1")
			negotiation, err := srv.CreateNegotiation(context.TODO(), professionalUser("pro-1"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
			})
			Expect(err).To(BeNil())

			_, err = srv.RespondNegotiation(context.TODO(), professionalUser("pro-1"), other.ID, negotiation.ID, "accept", nil, "")
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("list", func() {
		It("is visible to both parties and nobody else", func() {
			application := newPendingApplication("pro-1")
			_, err := srv.CreateNegotiation(context.TODO(), professionalUser("pro-1"), mappers.NegotiationCreateForm{
				ApplicationID: application.ID,
				ProposedPay:   65,
			})
			Expect(err).To(BeNil())

			negotiations, err := srv.ListNegotiations(context.TODO(), clinicUser(), application.ID)
			Expect(err).To(BeNil())
			Expect(negotiations).To(HaveLen(1))

			_, err = srv.ListNegotiations(context.TODO(), professionalUser("pro-2"), application.ID)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})
	})
})
