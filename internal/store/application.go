package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dentamatch/marketplace/internal/store/model"
)

// batchDeleteLimit bounds every batch-delete issued by the deletion
// cleanup phase, matching the persistence layer's batch-write limit.
const batchDeleteLimit = 25

type Application interface {
	InitialMigration() error
	Create(ctx context.Context, application model.Application) (*model.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Application, error)
	List(ctx context.Context, filter *ApplicationQueryFilter) (model.ApplicationList, error)
	Update(ctx context.Context, application model.Application) (*model.Application, error)
	BatchDelete(ctx context.Context, ids []uuid.UUID) (int, error)
}

type ApplicationStore struct {
	db *gorm.DB
}

// Make sure we conform to Application interface
var _ Application = (*ApplicationStore)(nil)

func NewApplicationStore(db *gorm.DB) Application {
	return &ApplicationStore{db: db}
}

func (s *ApplicationStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Application{})
}

// Create relies on the (job_id, professional_sub) unique index to reject
// duplicates. Two concurrent applies race on the service-level existence
// check; the index catches the loser here.
func (s *ApplicationStore) Create(ctx context.Context, application model.Application) (*model.Application, error) {
	result := getDB(ctx, s.db).Clauses(clause.Returning{}).Create(&application)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &application, nil
}

func (s *ApplicationStore) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	application := model.NewApplicationFromID(id)
	result := getDB(ctx, s.db).First(&application)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return application, nil
}

func (s *ApplicationStore) List(ctx context.Context, filter *ApplicationQueryFilter) (model.ApplicationList, error) {
	var applications model.ApplicationList

	tx := getDB(ctx, s.db)
	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Model(&model.Application{}).Order("created_at").Find(&applications); result.Error != nil {
		return nil, result.Error
	}
	return applications, nil
}

func (s *ApplicationStore) Update(ctx context.Context, application model.Application) (*model.Application, error) {
	result := getDB(ctx, s.db).Clauses(clause.Returning{}).Save(&application)
	if result.Error != nil {
		return nil, result.Error
	}
	return &application, nil
}

// BatchDelete removes the given applications in chunks of batchDeleteLimit
// and returns the number of rows actually deleted.
func (s *ApplicationStore) BatchDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	deleted := 0
	for _, chunk := range chunkIDs(ids, batchDeleteLimit) {
		result := getDB(ctx, s.db).Unscoped().Where("id IN ?", chunk).Delete(&model.Application{})
		if result.Error != nil {
			return deleted, result.Error
		}
		deleted += int(result.RowsAffected)
	}
	return deleted, nil
}

func chunkIDs(ids []uuid.UUID, size int) [][]uuid.UUID {
	var chunks [][]uuid.UUID
	for len(ids) > 0 {
		n := size
		if len(ids) < n {
			n = len(ids)
		}
		chunks = append(chunks, ids[:n])
		ids = ids[n:]
	}
	return chunks
}
