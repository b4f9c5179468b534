package service

import (
	"context"
	"errors"

	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/internal/store/model"
)

// ProfessionalService stores the professional profiles the matching
// engine reads.
type ProfessionalService struct {
	store store.Store
}

func NewProfessionalService(store store.Store) *ProfessionalService {
	return &ProfessionalService{store: store}
}

func (s *ProfessionalService) UpsertProfile(ctx context.Context, form mappers.ProfessionalForm) (*model.Professional, error) {
	return s.store.Professional().Upsert(ctx, form.ToProfessional())
}

func (s *ProfessionalService) GetProfile(ctx context.Context, sub string) (*model.Professional, error) {
	professional, err := s.store.Professional().Get(ctx, sub)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrProfessionalNotFound(sub)
		}
		return nil, err
	}
	return professional, nil
}
