package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dentamatch/marketplace/internal/store/model"
)

type Professional interface {
	InitialMigration() error
	Upsert(ctx context.Context, professional model.Professional) (*model.Professional, error)
	Get(ctx context.Context, sub string) (*model.Professional, error)
	GetBatch(ctx context.Context, subs []string) (model.ProfessionalList, error)
}

type ProfessionalStore struct {
	db *gorm.DB
}

// Make sure we conform to Professional interface
var _ Professional = (*ProfessionalStore)(nil)

func NewProfessionalStore(db *gorm.DB) Professional {
	return &ProfessionalStore{db: db}
}

func (s *ProfessionalStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Professional{})
}

func (s *ProfessionalStore) Upsert(ctx context.Context, professional model.Professional) (*model.Professional, error) {
	result := getDB(ctx, s.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sub"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "first_name", "last_name", "email", "phone", "updated_at"}),
	}).Create(&professional)
	if result.Error != nil {
		return nil, result.Error
	}
	return &professional, nil
}

func (s *ProfessionalStore) Get(ctx context.Context, sub string) (*model.Professional, error) {
	professional := model.Professional{Sub: sub}
	result := getDB(ctx, s.db).First(&professional)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &professional, nil
}

// GetBatch returns the stored profiles for the given subs. Missing subs
// are simply absent from the result; the caller decides whether that is
// an error.
func (s *ProfessionalStore) GetBatch(ctx context.Context, subs []string) (model.ProfessionalList, error) {
	var professionals model.ProfessionalList
	result := getDB(ctx, s.db).Where("sub IN ?", subs).Find(&professionals)
	if result.Error != nil {
		return nil, result.Error
	}
	return professionals, nil
}
