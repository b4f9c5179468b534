package service_test

import (
	"context"
	"fmt"

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

var _ = Describe("invitation service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		srv    *service.InvitationService
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
		srv = service.NewInvitationService(s, events.NewEventProducer(newTestWriter()))
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM jobs;")
		gormdb.Exec("DELETE FROM invitations;")
		gormdb.Exec("DELETE FROM professionals;")
	})

	Context("invite", func() {
		It("invites compatible professionals and reports no failures", func() {
			job := openJob("clinic-1", "clinic-user-1")
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-1", Role: "hygienist"})
			Expect(err).To(BeNil())
			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-2", Role: "dual_role_front_da"})
			Expect(err).To(BeNil())

			result, err := srv.Invite(context.TODO(), mappers.InvitationBatchForm{
				JobID:            job.ID,
				IssuerSub:        "clinic-user-1",
				ProfessionalSubs: []string{"pro-1", "pro-2"},
			})
			Expect(err).To(BeNil())
			Expect(result.Invitations).To(HaveLen(2))
			Expect(result.Failed).To(BeEmpty())
			Expect(result.Invitations[0].Status).To(Equal("sent"))
		})

		It("rejects a batch above the limit before touching the store", func() {
			job := openJob("clinic-1", "clinic-user-1")
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			subs := make([]string, 51)
			for i := range subs {
				subs[i] = fmt.Sprintf("pro-%d", i)
			}

			_, err = srv.Invite(context.TODO(), mappers.InvitationBatchForm{
				JobID:            job.ID,
				IssuerSub:        "clinic-user-1",
				ProfessionalSubs: subs,
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrValidation{}))
			Expect(err.Error()).To(ContainSubstring("50"))

			invitations, err := s.Invitation().List(context.TODO(), store.NewInvitationQueryFilter().ByJobID(job.ID))
			Expect(err).To(BeNil())
			Expect(invitations).To(BeEmpty())
		})

		It("writes nothing when a single candidate is ineligible", func() {
			job := openJob("clinic-1", "clinic-user-1")
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-1", Role: "hygienist"})
			Expect(err).To(BeNil())
			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-2", Role: "dentist"})
			Expect(err).To(BeNil())

			_, err = srv.Invite(context.TODO(), mappers.InvitationBatchForm{
				JobID:            job.ID,
				IssuerSub:        "clinic-user-1",
				ProfessionalSubs: []string{"pro-1", "pro-2", "pro-missing"},
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrValidation{}))
			Expect(err.Error()).To(ContainSubstring("pro-missing"))
			Expect(err.Error()).To(ContainSubstring("pro-2"))

			invitations, err := s.Invitation().List(context.TODO(), store.NewInvitationQueryFilter().ByJobID(job.ID))
			Expect(err).To(BeNil())
			Expect(invitations).To(BeEmpty())
		})

		It("reports an already invited professional without aborting the rest", func() {
			job := openJob("clinic-1", "clinic-user-1")
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-1", Role: "hygienist"})
			Expect(err).To(BeNil())
			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-2", Role: "hygienist"})
			Expect(err).To(BeNil())

			_, err = srv.Invite(context.TODO(), mappers.InvitationBatchForm{
				JobID:            job.ID,
				IssuerSub:        "clinic-user-1",
				ProfessionalSubs: []string{"pro-1"},
			})
			Expect(err).To(BeNil())

			result, err := srv.Invite(context.TODO(), mappers.InvitationBatchForm{
				JobID:            job.ID,
				IssuerSub:        "clinic-user-1",
				ProfessionalSubs: []string{"pro-1", "pro-2"},
			})
			Expect(err).To(BeNil())
			Expect(result.Invitations).To(HaveLen(1))
			Expect(result.Failed).To(HaveKeyWithValue("pro-1", "already invited"))
		})

		It("refuses issuance by a clinic user that does not own the job", func() {
			job := openJob("clinic-1", "clinic-user-1")
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			_, err = srv.Invite(context.TODO(), mappers.InvitationBatchForm{
				JobID:            job.ID,
				IssuerSub:        "clinic-user-2",
				ProfessionalSubs: []string{"pro-1"},
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})
	})

	Context("respond", func() {
		It("lets the addressed professional accept once", func() {
			job := openJob("clinic-1", "clinic-user-1")
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-1", Role: "hygienist"})
			Expect(err).To(BeNil())

			result, err := srv.Invite(context.TODO(), mappers.InvitationBatchForm{
				JobID:            job.ID,
				IssuerSub:        "clinic-user-1",
				ProfessionalSubs: []string{"pro-1"},
			})
			Expect(err).To(BeNil())
			invitation := result.Invitations[0]

			accepted, err := srv.Respond(context.TODO(), professionalUser("pro-1"), invitation.ID, true)
			Expect(err).To(BeNil())
			Expect(accepted.Status).To(Equal("accepted"))

			_, err = srv.Respond(context.TODO(), professionalUser("pro-1"), invitation.ID, false)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrConflict{}))
		})

		It("refuses a response from a different professional", func() {
			job := openJob("clinic-1", "clinic-user-1")
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-1", Role: "hygienist"})
			Expect(err).To(BeNil())

			result, err := srv.Invite(context.TODO(), mappers.InvitationBatchForm{
				JobID:            job.ID,
				IssuerSub:        "clinic-user-1",
				ProfessionalSubs: []string{"pro-1"},
			})
			Expect(err).To(BeNil())

			_, err = srv.Respond(context.TODO(), professionalUser("pro-2"), result.Invitations[0].ID, true)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})
	})
})
