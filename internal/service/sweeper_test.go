package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dentamatch/marketplace/internal/config"
	"github.com/dentamatch/marketplace/internal/service"
	"github.com/dentamatch/marketplace/internal/store"
)

var _ = Describe("overdue sweeper", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		srv    *service.OverdueSweeper
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
		srv = service.NewOverdueSweeper(s)
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM jobs;")
	})

	It("flags overdue scheduled postings and leaves the rest alone", func() {
		overdue := openJob("clinic-1", "clinic-user-1")
		overdue.Status = "scheduled"
		past := time.Now().Add(-24 * time.Hour)
		overdue.ScheduledDate = &past
		_, err := s.Job().Create(context.TODO(), overdue)
		Expect(err).To(BeNil())

		upcoming := openJob("clinic-1", "clinic-user-1")
		upcoming.Status = "scheduled"
		future := time.Now().Add(24 * time.Hour)
		upcoming.ScheduledDate = &future
		_, err = s.Job().Create(context.TODO(), upcoming)
		Expect(err).To(BeNil())

		srv.Sweep(context.TODO())

		flagged, err := s.Job().Get(context.TODO(), overdue.ID)
		Expect(err).To(BeNil())
		Expect(flagged.Status).To(Equal("action_needed"))
		Expect(flagged.History()).To(HaveLen(1))
		Expect(flagged.History()[0].ChangedBy).To(Equal("system"))

		untouched, err := s.Job().Get(context.TODO(), upcoming.ID)
		Expect(err).To(BeNil())
		Expect(untouched.Status).To(Equal("scheduled"))
		Expect(untouched.History()).To(BeEmpty())
	})
})
