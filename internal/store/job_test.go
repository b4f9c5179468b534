package store_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dentamatch/marketplace/internal/config"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
)

func newTestJob(clinicID string, ownerSub string, status string) model.Job {
	return model.Job{
		ID:               uuid.New(),
		ClinicID:         clinicID,
		OwnerSub:         ownerSub,
		JobType:          model.JobTypeTemporary,
		ProfessionalRole: "hygienist",
		Status:           status,
		Details: model.MakeJSONField(model.JobDetails{
			Temporary: &model.TemporaryDetails{
				Date:       time.Now().Add(48 * time.Hour),
				Hours:      8,
				HourlyRate: 55,
			},
		}),
		ClinicSnapshot: model.MakeJSONField(model.ClinicSnapshot{Name: "clinic-1", City: "Austin"}),
		StatusHistory:  model.MakeJSONField([]model.StatusChange{}),
	}
}

var _ = Describe("job store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM jobs;")
	})

	Context("create and get", func() {
		It("successfully creates a job and reads it back", func() {
			job := newTestJob("clinic-1", "clinic-user-1", "open")

			created, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())
			Expect(created.ID).To(Equal(job.ID))

			got, err := s.Job().Get(context.TODO(), job.ID)
			Expect(err).To(BeNil())
			Expect(got.Status).To(Equal("open"))
			Expect(got.Details.Data.Temporary).ToNot(BeNil())
			Expect(got.Details.Data.Temporary.Hours).To(Equal(8))
			Expect(got.ClinicSnapshot.Data.City).To(Equal("Austin"))
		})

		It("returns not found for a missing job", func() {
			_, err := s.Job().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("list", func() {
		It("filters by clinic id", func() {
			_, err := s.Job().Create(context.TODO(), newTestJob("clinic-1", "clinic-user-1", "open"))
			Expect(err).To(BeNil())
			_, err = s.Job().Create(context.TODO(), newTestJob("clinic-2", "clinic-user-2", "open"))
			Expect(err).To(BeNil())

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByClinicID("clinic-1"))
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].ClinicID).To(Equal("clinic-1"))
		})

		It("filters by status and role set", func() {
			open := newTestJob("clinic-1", "clinic-user-1", "open")
			_, err := s.Job().Create(context.TODO(), open)
			Expect(err).To(BeNil())

			dualRole := newTestJob("clinic-1", "clinic-user-1", "open")
			dualRole.ProfessionalRole = "dual_role_front_da"
			_, err = s.Job().Create(context.TODO(), dualRole)
			Expect(err).To(BeNil())

			completed := newTestJob("clinic-1", "clinic-user-1", "completed")
			_, err = s.Job().Create(context.TODO(), completed)
			Expect(err).To(BeNil())

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().
				ByStatus("open").
				ByProfessionalRoles([]string{"hygienist", "dual_role_front_da"}))
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))
		})

		It("filters by scheduled date in the past", func() {
			overdue := newTestJob("clinic-1", "clinic-user-1", "scheduled")
			past := time.Now().Add(-24 * time.Hour)
			overdue.ScheduledDate = &past
			_, err := s.Job().Create(context.TODO(), overdue)
			Expect(err).To(BeNil())

			upcoming := newTestJob("clinic-1", "clinic-user-1", "scheduled")
			future := time.Now().Add(24 * time.Hour)
			upcoming.ScheduledDate = &future
			_, err = s.Job().Create(context.TODO(), upcoming)
			Expect(err).To(BeNil())

			unscheduled := newTestJob("clinic-1", "clinic-user-1", "open")
			_, err = s.Job().Create(context.TODO(), unscheduled)
			Expect(err).To(BeNil())

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().
				ByStatus("scheduled").
				ByScheduledBefore(time.Now()))
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].ID).To(Equal(overdue.ID))
		})
	})

	Context("update", func() {
		It("persists appended status history", func() {
			job := newTestJob("clinic-1", "clinic-user-1", "open")
			created, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			created.Status = "scheduled"
			created.AppendHistory(model.StatusChange{
				FromStatus: "open",
				ToStatus:   "scheduled",
				ChangedAt:  time.Now(),
				ChangedBy:  "clinic-user-1",
			})
			_, err = s.Job().Update(context.TODO(), *created)
			Expect(err).To(BeNil())

			got, err := s.Job().Get(context.TODO(), job.ID)
			Expect(err).To(BeNil())
			Expect(got.Status).To(Equal("scheduled"))
			Expect(got.History()).To(HaveLen(1))
			Expect(got.History()[0].ToStatus).To(Equal("scheduled"))
		})
	})

	Context("delete", func() {
		It("removes the job", func() {
			job := newTestJob("clinic-1", "clinic-user-1", "open")
			_, err := s.Job().Create(context.TODO(), job)
			Expect(err).To(BeNil())

			Expect(s.Job().Delete(context.TODO(), job.ID)).To(BeNil())

			_, err = s.Job().Get(context.TODO(), job.ID)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		It("is a no-op for a missing job", func() {
			Expect(s.Job().Delete(context.TODO(), uuid.New())).To(BeNil())
		})
	})
})
