package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dentamatch/marketplace/internal/store/model"
)

type Invitation interface {
	InitialMigration() error
	Create(ctx context.Context, invitation model.Invitation) (*model.Invitation, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	List(ctx context.Context, filter *InvitationQueryFilter) (model.InvitationList, error)
	Update(ctx context.Context, invitation model.Invitation) (*model.Invitation, error)
	BatchDelete(ctx context.Context, ids []uuid.UUID) (int, error)
}

type InvitationStore struct {
	db *gorm.DB
}

// Make sure we conform to Invitation interface
var _ Invitation = (*InvitationStore)(nil)

func NewInvitationStore(db *gorm.DB) Invitation {
	return &InvitationStore{db: db}
}

func (s *InvitationStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Invitation{})
}

func (s *InvitationStore) Create(ctx context.Context, invitation model.Invitation) (*model.Invitation, error) {
	result := getDB(ctx, s.db).Clauses(clause.Returning{}).Create(&invitation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &invitation, nil
}

func (s *InvitationStore) Get(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	invitation := model.NewInvitationFromID(id)
	result := getDB(ctx, s.db).First(&invitation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return invitation, nil
}

func (s *InvitationStore) List(ctx context.Context, filter *InvitationQueryFilter) (model.InvitationList, error) {
	var invitations model.InvitationList

	tx := getDB(ctx, s.db)
	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Model(&model.Invitation{}).Order("created_at").Find(&invitations); result.Error != nil {
		return nil, result.Error
	}
	return invitations, nil
}

func (s *InvitationStore) Update(ctx context.Context, invitation model.Invitation) (*model.Invitation, error) {
	result := getDB(ctx, s.db).Clauses(clause.Returning{}).Save(&invitation)
	if result.Error != nil {
		return nil, result.Error
	}
	return &invitation, nil
}

func (s *InvitationStore) BatchDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	deleted := 0
	for _, chunk := range chunkIDs(ids, batchDeleteLimit) {
		result := getDB(ctx, s.db).Unscoped().Where("id IN ?", chunk).Delete(&model.Invitation{})
		if result.Error != nil {
			return deleted, result.Error
		}
		deleted += int(result.RowsAffected)
	}
	return deleted, nil
}
