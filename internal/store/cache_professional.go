package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dentamatch/marketplace/internal/store/model"
)

const professionalCacheTTL = 5 * time.Minute

// CacheProfessionalStore is a wrapper around ProfessionalStore which
// provides read-through caching of profiles in redis. The matching
// engine's batch existence check hits this on every invitation call.
type CacheProfessionalStore struct {
	delegate Professional
	rdb      *redis.Client
}

func NewCacheProfessionalStore(delegate Professional, rdb *redis.Client) Professional {
	return &CacheProfessionalStore{delegate: delegate, rdb: rdb}
}

func (s *CacheProfessionalStore) InitialMigration() error {
	return s.delegate.InitialMigration()
}

func (s *CacheProfessionalStore) Upsert(ctx context.Context, professional model.Professional) (*model.Professional, error) {
	result, err := s.delegate.Upsert(ctx, professional)
	if err != nil {
		return nil, err
	}

	if err := s.rdb.Del(ctx, cacheKey(professional.Sub)).Err(); err != nil {
		zap.S().Named("professional_cache").Warnw("failed to invalidate profile", "sub", professional.Sub, "error", err)
	}

	return result, nil
}

func (s *CacheProfessionalStore) Get(ctx context.Context, sub string) (*model.Professional, error) {
	if cached, err := s.rdb.Get(ctx, cacheKey(sub)).Bytes(); err == nil {
		var professional model.Professional
		if err := json.Unmarshal(cached, &professional); err == nil {
			return &professional, nil
		}
	}

	professional, err := s.delegate.Get(ctx, sub)
	if err != nil {
		return nil, err
	}

	s.put(ctx, professional)
	return professional, nil
}

func (s *CacheProfessionalStore) GetBatch(ctx context.Context, subs []string) (model.ProfessionalList, error) {
	found := make(model.ProfessionalList, 0, len(subs))
	missing := make([]string, 0, len(subs))

	for _, sub := range subs {
		cached, err := s.rdb.Get(ctx, cacheKey(sub)).Bytes()
		if err != nil {
			missing = append(missing, sub)
			continue
		}
		var professional model.Professional
		if err := json.Unmarshal(cached, &professional); err != nil {
			missing = append(missing, sub)
			continue
		}
		found = append(found, professional)
	}

	if len(missing) == 0 {
		return found, nil
	}

	fetched, err := s.delegate.GetBatch(ctx, missing)
	if err != nil {
		return nil, err
	}
	for i := range fetched {
		s.put(ctx, &fetched[i])
	}

	return append(found, fetched...), nil
}

func (s *CacheProfessionalStore) put(ctx context.Context, professional *model.Professional) {
	raw, err := json.Marshal(professional)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(professional.Sub), raw, professionalCacheTTL).Err(); err != nil {
		zap.S().Named("professional_cache").Warnw("failed to cache profile", "sub", professional.Sub, "error", err)
	}
}

func cacheKey(sub string) string {
	return "professional:" + sub
}
