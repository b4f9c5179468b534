package store_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dentamatch/marketplace/internal/config"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
)

func newTestApplication(jobID uuid.UUID, professionalSub string, clinicID string) model.Application {
	return model.Application{
		ID:              uuid.New(),
		JobID:           jobID,
		ProfessionalSub: professionalSub,
		ClinicID:        clinicID,
		Status:          "pending",
	}
}

var _ = Describe("application store", Ordered, func() {
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
		gormdb.Exec("DELETE FROM applications;")
	})

	Context("create", func() {
		It("rejects a second application for the same job and professional", func() {
			jobID := uuid.New()

			_, err := s.Application().Create(context.TODO(), newTestApplication(jobID, "pro-1", "clinic-1"))
			Expect(err).To(BeNil())

			_, err = s.Application().Create(context.TODO(), newTestApplication(jobID, "pro-1", "clinic-1"))
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})

		It("allows the same professional to apply to different jobs", func() {
			_, err := s.Application().Create(context.TODO(), newTestApplication(uuid.New(), "pro-1", "clinic-1"))
			Expect(err).To(BeNil())

			_, err = s.Application().Create(context.TODO(), newTestApplication(uuid.New(), "pro-1", "clinic-1"))
			Expect(err).To(BeNil())
		})
	})

	Context("list", func() {
		It("filters by job and by professional", func() {
			jobID := uuid.New()
			_, err := s.Application().Create(context.TODO(), newTestApplication(jobID, "pro-1", "clinic-1"))
			Expect(err).To(BeNil())
			_, err = s.Application().Create(context.TODO(), newTestApplication(jobID, "pro-2", "clinic-1"))
			Expect(err).To(BeNil())
			_, err = s.Application().Create(context.TODO(), newTestApplication(uuid.New(), "pro-1", "clinic-1"))
			Expect(err).To(BeNil())

			byJob, err := s.Application().List(context.TODO(), store.NewApplicationQueryFilter().ByJobID(jobID))
			Expect(err).To(BeNil())
			Expect(byJob).To(HaveLen(2))

			bySub, err := s.Application().List(context.TODO(), store.NewApplicationQueryFilter().ByProfessionalSub("pro-1"))
			Expect(err).To(BeNil())
			Expect(bySub).To(HaveLen(2))
		})
	})

	Context("update", func() {
		It("persists a status change", func() {
			application, err := s.Application().Create(context.TODO(), newTestApplication(uuid.New(), "pro-1", "clinic-1"))
			Expect(err).To(BeNil())

			application.Status = "withdrawn"
			_, err = s.Application().Update(context.TODO(), *application)
			Expect(err).To(BeNil())

			got, err := s.Application().Get(context.TODO(), application.ID)
			Expect(err).To(BeNil())
			Expect(got.Status).To(Equal("withdrawn"))
		})
	})

	Context("batch delete", func() {
		It("deletes more rows than one chunk holds and reports the count", func() {
			jobID := uuid.New()
			ids := make([]uuid.UUID, 0, 30)
			for i := 0; i < 30; i++ {
				application, err := s.Application().Create(context.TODO(),
					newTestApplication(jobID, fmt.Sprintf("pro-%d", i), "clinic-1"))
				Expect(err).To(BeNil())
				ids = append(ids, application.ID)
			}

			deleted, err := s.Application().BatchDelete(context.TODO(), ids)
			Expect(err).To(BeNil())
			Expect(deleted).To(Equal(30))

			remaining, err := s.Application().List(context.TODO(), store.NewApplicationQueryFilter().ByJobID(jobID))
			Expect(err).To(BeNil())
			Expect(remaining).To(BeEmpty())
		})

		It("counts only rows that existed", func() {
			application, err := s.Application().Create(context.TODO(), newTestApplication(uuid.New(), "pro-1", "clinic-1"))
			Expect(err).To(BeNil())

			deleted, err := s.Application().BatchDelete(context.TODO(), []uuid.UUID{application.ID, uuid.New()})
			Expect(err).To(BeNil())
			Expect(deleted).To(Equal(1))
		})
	})
})
