package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dentamatch/marketplace/internal/config"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
)

var _ = Describe("professional store", Ordered, func() {
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
		gormdb.Exec("DELETE FROM professionals;")
	})

	Context("upsert", func() {
		It("creates a profile on first write", func() {
			professional, err := s.Professional().Upsert(context.TODO(), model.Professional{
				Sub:       "pro-1",
				Role:      "hygienist",
				FirstName: "Dana",
			})
			Expect(err).To(BeNil())
			Expect(professional.Sub).To(Equal("pro-1"))

			got, err := s.Professional().Get(context.TODO(), "pro-1")
			Expect(err).To(BeNil())
			Expect(got.Role).To(Equal("hygienist"))
		})

		It("updates the existing profile on second write", func() {
			_, err := s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-1", Role: "hygienist"})
			Expect(err).To(BeNil())

			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-1", Role: "dual_role_front_da"})
			Expect(err).To(BeNil())

			got, err := s.Professional().Get(context.TODO(), "pro-1")
			Expect(err).To(BeNil())
			Expect(got.Role).To(Equal("dual_role_front_da"))

			var count int64
			gormdb.Model(&model.Professional{}).Count(&count)
			Expect(count).To(Equal(int64(1)))
		})
	})

	Context("get", func() {
		It("returns not found for an unknown sub", func() {
			_, err := s.Professional().Get(context.TODO(), "pro-unknown")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("get batch", func() {
		It("omits subs without a stored profile", func() {
			_, err := s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-1", Role: "hygienist"})
			Expect(err).To(BeNil())
			_, err = s.Professional().Upsert(context.TODO(), model.Professional{Sub: "pro-2", Role: "dentist"})
			Expect(err).To(BeNil())

			professionals, err := s.Professional().GetBatch(context.TODO(), []string{"pro-1", "pro-2", "pro-missing"})
			Expect(err).To(BeNil())
			Expect(professionals).To(HaveLen(2))
		})
	})
})
