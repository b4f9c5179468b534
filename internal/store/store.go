package store

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Job() Job
	Application() Application
	Invitation() Invitation
	Negotiation() Negotiation
	Professional() Professional
	InitialMigration() error
	Close() error
}

type DataStore struct {
	db           *gorm.DB
	job          Job
	application  Application
	invitation   Invitation
	negotiation  Negotiation
	professional Professional
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:           db,
		job:          NewJobStore(db),
		application:  NewApplicationStore(db),
		invitation:   NewInvitationStore(db),
		negotiation:  NewNegotiationStore(db),
		professional: NewProfessionalStore(db),
	}
}

// NewStoreWithCache wires the redis read-through cache in front of the
// professional profile store.
func NewStoreWithCache(db *gorm.DB, rdb *redis.Client) Store {
	s := NewStore(db).(*DataStore)
	s.professional = NewCacheProfessionalStore(s.professional, rdb)
	return s
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Job() Job {
	return s.job
}

func (s *DataStore) Application() Application {
	return s.application
}

func (s *DataStore) Invitation() Invitation {
	return s.invitation
}

func (s *DataStore) Negotiation() Negotiation {
	return s.negotiation
}

func (s *DataStore) Professional() Professional {
	return s.professional
}

func (s *DataStore) InitialMigration() error {
	if err := s.job.InitialMigration(); err != nil {
		return err
	}
	if err := s.application.InitialMigration(); err != nil {
		return err
	}
	if err := s.invitation.InitialMigration(); err != nil {
		return err
	}
	if err := s.negotiation.InitialMigration(); err != nil {
		return err
	}
	return s.professional.InitialMigration()
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
