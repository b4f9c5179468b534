package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dentamatch/marketplace/internal/config"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/service"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
)

var _ = Describe("deletion service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		srv    *service.DeletionService
	)

	owner := func() model.Job {
		return openJob("clinic-1", "clinic-user-1")
	}

	newApplication := func(jobID uuid.UUID, sub string, status string) *model.Application {
		application, err := s.Application().Create(context.TODO(), model.Application{
			ID:              uuid.New(),
			JobID:           jobID,
			ProfessionalSub: sub,
			ClinicID:        "clinic-1",
			Status:          status,
		})
		Expect(err).To(BeNil())
		return application
	}

	newInvitation := func(jobID uuid.UUID, sub string, status string) *model.Invitation {
		invitation, err := s.Invitation().Create(context.TODO(), model.Invitation{
			ID:              uuid.New(),
			JobID:           jobID,
			ProfessionalSub: sub,
			IssuerSub:       "clinic-user-1",
			ClinicID:        "clinic-1",
			Status:          status,
		})
		Expect(err).To(BeNil())
		return invitation
	}

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
		srv = service.NewDeletionService(s, events.NewEventProducer(newTestWriter()))
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM jobs;")
		gormdb.Exec("DELETE FROM applications;")
		gormdb.Exec("DELETE FROM invitations;")
		gormdb.Exec("DELETE FROM negotiations;")
	})

	It("deletes an open posting with no dependents", func() {
		job := owner()
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		result, err := srv.DeleteJob(context.TODO(), clinicUser(), job.ID, false)
		Expect(err).To(BeNil())
		Expect(result.Deleted).To(BeTrue())
		Expect(result.RelatedItemsDeleted).To(Equal(0))

		_, err = s.Job().Get(context.TODO(), job.ID)
		Expect(err).To(MatchError(store.ErrRecordNotFound))
	})

	It("refuses deletion by anyone but the owner", func() {
		job := owner()
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		_, err = srv.DeleteJob(context.TODO(), professionalUser("pro-1"), job.ID, false)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
	})

	It("blocks a scheduled posting even with force", func() {
		job := owner()
		job.Status = "scheduled"
		when := time.Now().Add(72 * time.Hour)
		job.ScheduledDate = &when
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		_, err = srv.DeleteJob(context.TODO(), clinicUser(), job.ID, true)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))

		_, err = s.Job().Get(context.TODO(), job.ID)
		Expect(err).To(BeNil())
	})

	It("blocks deletion while a pending application exists, with or without force", func() {
		job := owner()
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())
		newApplication(job.ID, "pro-1", "pending")

		_, err = srv.DeleteJob(context.TODO(), clinicUser(), job.ID, false)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))

		_, err = srv.DeleteJob(context.TODO(), clinicUser(), job.ID, true)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))
	})

	It("deletes once the blocking application is withdrawn and counts the cleanup", func() {
		job := owner()
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())
		newApplication(job.ID, "pro-1", "withdrawn")
		newInvitation(job.ID, "pro-2", "declined")

		result, err := srv.DeleteJob(context.TODO(), clinicUser(), job.ID, false)
		Expect(err).To(BeNil())
		Expect(result.Deleted).To(BeTrue())
		Expect(result.RelatedItemsDeleted).To(Equal(2))

		applications, err := s.Application().List(context.TODO(), store.NewApplicationQueryFilter().ByJobID(job.ID))
		Expect(err).To(BeNil())
		Expect(applications).To(BeEmpty())
	})

	It("blocks deletion while an unanswered invitation exists", func() {
		job := owner()
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())
		newInvitation(job.ID, "pro-1", "sent")

		_, err = srv.DeleteJob(context.TODO(), clinicUser(), job.ID, false)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))
	})

	It("requires force for a completed posting", func() {
		job := owner()
		job.Status = "completed"
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		_, err = srv.DeleteJob(context.TODO(), clinicUser(), job.ID, false)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))
		Expect(err.Error()).To(ContainSubstring("force"))

		result, err := srv.DeleteJob(context.TODO(), clinicUser(), job.ID, true)
		Expect(err).To(BeNil())
		Expect(result.Deleted).To(BeTrue())
	})

	It("sweeps negotiations attached to the posting during cleanup", func() {
		job := owner()
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())
		application := newApplication(job.ID, "pro-1", "rejected")

		negotiation := model.Negotiation{
			ID:            uuid.New(),
			ApplicationID: application.ID,
			JobID:         job.ID,
			Status:        "rejected",
		}
		negotiation.AppendOffer(model.Offer{Pay: 60, From: model.OfferFromProfessional, At: time.Now()})
		_, err = s.Negotiation().Create(context.TODO(), negotiation)
		Expect(err).To(BeNil())

		result, err := srv.DeleteJob(context.TODO(), clinicUser(), job.ID, false)
		Expect(err).To(BeNil())
		Expect(result.RelatedItemsDeleted).To(Equal(2))

		negotiations, err := s.Negotiation().List(context.TODO(), store.NewNegotiationQueryFilter().ByJobID(job.ID))
		Expect(err).To(BeNil())
		Expect(negotiations).To(BeEmpty())
	})
})
