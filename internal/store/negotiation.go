package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dentamatch/marketplace/internal/store/model"
)

type Negotiation interface {
	InitialMigration() error
	Create(ctx context.Context, negotiation model.Negotiation) (*model.Negotiation, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Negotiation, error)
	List(ctx context.Context, filter *NegotiationQueryFilter) (model.NegotiationList, error)
	Update(ctx context.Context, negotiation model.Negotiation) (*model.Negotiation, error)
	BatchDelete(ctx context.Context, ids []uuid.UUID) (int, error)
}

type NegotiationStore struct {
	db *gorm.DB
}

// Make sure we conform to Negotiation interface
var _ Negotiation = (*NegotiationStore)(nil)

func NewNegotiationStore(db *gorm.DB) Negotiation {
	return &NegotiationStore{db: db}
}

func (s *NegotiationStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Negotiation{})
}

func (s *NegotiationStore) Create(ctx context.Context, negotiation model.Negotiation) (*model.Negotiation, error) {
	result := getDB(ctx, s.db).Clauses(clause.Returning{}).Create(&negotiation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &negotiation, nil
}

func (s *NegotiationStore) Get(ctx context.Context, id uuid.UUID) (*model.Negotiation, error) {
	negotiation := model.NewNegotiationFromID(id)
	result := getDB(ctx, s.db).First(&negotiation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return negotiation, nil
}

func (s *NegotiationStore) List(ctx context.Context, filter *NegotiationQueryFilter) (model.NegotiationList, error) {
	var negotiations model.NegotiationList

	tx := getDB(ctx, s.db)
	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Model(&model.Negotiation{}).Order("created_at").Find(&negotiations); result.Error != nil {
		return nil, result.Error
	}
	return negotiations, nil
}

func (s *NegotiationStore) Update(ctx context.Context, negotiation model.Negotiation) (*model.Negotiation, error) {
	result := getDB(ctx, s.db).Clauses(clause.Returning{}).Save(&negotiation)
	if result.Error != nil {
		return nil, result.Error
	}
	return &negotiation, nil
}

func (s *NegotiationStore) BatchDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	deleted := 0
	for _, chunk := range chunkIDs(ids, batchDeleteLimit) {
		result := getDB(ctx, s.db).Unscoped().Where("id IN ?", chunk).Delete(&model.Negotiation{})
		if result.Error != nil {
			return deleted, result.Error
		}
		deleted += int(result.RowsAffected)
	}
	return deleted, nil
}
