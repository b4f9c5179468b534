package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dentamatch/marketplace/internal/config"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/service"
	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store"
)

var _ = Describe("job status transitions", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		srv    *service.JobService
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
		srv = service.NewJobService(s, events.NewEventProducer(newTestWriter()))
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM jobs;")
	})

	It("schedules an open posting and records exactly one history entry", func() {
		job := openJob("clinic-1", "clinic-user-1")
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		pro := "pro-1"
		when := time.Now().Add(72 * time.Hour)
		updated, err := srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:                   job.ID,
			RequesterSub:            "clinic-user-1",
			Status:                  "scheduled",
			AcceptedProfessionalSub: &pro,
			ScheduledDate:           &when,
		})
		Expect(err).To(BeNil())
		Expect(updated.Status).To(Equal("scheduled"))
		Expect(*updated.AcceptedProfessionalSub).To(Equal("pro-1"))
		Expect(updated.History()).To(HaveLen(1))
		Expect(updated.History()[0].FromStatus).To(Equal("open"))
		Expect(updated.History()[0].ToStatus).To(Equal("scheduled"))
		Expect(updated.History()[0].ChangedBy).To(Equal("clinic-user-1"))
	})

	It("rejects scheduling without the accepted professional and date", func() {
		job := openJob("clinic-1", "clinic-user-1")
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		_, err = srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:        job.ID,
			RequesterSub: "clinic-user-1",
			Status:       "scheduled",
		})
		Expect(err).To(BeAssignableToTypeOf(&service.ErrValidation{}))

		got, err := s.Job().Get(context.TODO(), job.ID)
		Expect(err).To(BeNil())
		Expect(got.Status).To(Equal("open"))
		Expect(got.History()).To(BeEmpty())
	})

	It("rejects a transition the state machine does not allow", func() {
		job := openJob("clinic-1", "clinic-user-1")
		job.Status = "completed"
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		_, err = srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:        job.ID,
			RequesterSub: "clinic-user-1",
			Status:       "scheduled",
		})
		Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidTransition{}))

		got, err := s.Job().Get(context.TODO(), job.ID)
		Expect(err).To(BeNil())
		Expect(got.History()).To(BeEmpty())
	})

	It("rejects a transition requested by a non-owner", func() {
		job := openJob("clinic-1", "clinic-user-1")
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		_, err = srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:        job.ID,
			RequesterSub: "clinic-user-2",
			Status:       "completed",
		})
		Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
	})

	It("stamps completion and keeps the full history across transitions", func() {
		job := openJob("clinic-1", "clinic-user-1")
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		pro := "pro-1"
		when := time.Now().Add(72 * time.Hour)
		_, err = srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:                   job.ID,
			RequesterSub:            "clinic-user-1",
			Status:                  "scheduled",
			AcceptedProfessionalSub: &pro,
			ScheduledDate:           &when,
		})
		Expect(err).To(BeNil())

		updated, err := srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:        job.ID,
			RequesterSub: "clinic-user-1",
			Status:       "completed",
			Notes:        "shift done",
		})
		Expect(err).To(BeNil())
		Expect(updated.CompletedAt).ToNot(BeNil())
		Expect(*updated.CompletionNotes).To(Equal("shift done"))
		Expect(updated.History()).To(HaveLen(2))
	})

	It("clears the scheduling outcome when a completed posting reopens", func() {
		job := openJob("clinic-1", "clinic-user-1")
		_, err := s.Job().Create(context.TODO(), job)
		Expect(err).To(BeNil())

		pro := "pro-1"
		when := time.Now().Add(72 * time.Hour)
		_, err = srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:                   job.ID,
			RequesterSub:            "clinic-user-1",
			Status:                  "scheduled",
			AcceptedProfessionalSub: &pro,
			ScheduledDate:           &when,
		})
		Expect(err).To(BeNil())
		_, err = srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:        job.ID,
			RequesterSub: "clinic-user-1",
			Status:       "completed",
		})
		Expect(err).To(BeNil())

		reopened, err := srv.UpdateJobStatus(context.TODO(), mappers.StatusUpdateForm{
			JobID:        job.ID,
			RequesterSub: "clinic-user-1",
			Status:       "open",
		})
		Expect(err).To(BeNil())
		Expect(reopened.Status).To(Equal("open"))
		Expect(reopened.AcceptedProfessionalSub).To(BeNil())
		Expect(reopened.ScheduledDate).To(BeNil())
		Expect(reopened.CompletedAt).To(BeNil())
		Expect(reopened.History()).To(HaveLen(3))
	})
})
