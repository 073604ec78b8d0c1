package usecase

import (
	"context"
	"log/slog"

	"github.com/logistics-platform/waybill/internal/domain/model"
	"github.com/logistics-platform/waybill/internal/domain/repository"
)

// CachedWaybillStore orchestrates reads and writes across the durable
// repository and the cache (cache-aside). The repository is the source of
// truth; cache writes are best-effort and never fail the caller.
type CachedWaybillStore struct {
	repo   repository.WaybillRepository
	cache  repository.WaybillCache
	locks  *keyLock
	logger *slog.Logger
}

// NewCachedWaybillStore constructs the cache-aside store.
func NewCachedWaybillStore(repo repository.WaybillRepository, cache repository.WaybillCache, logger *slog.Logger) *CachedWaybillStore {
	return &CachedWaybillStore{
		repo:   repo,
		cache:  cache,
		locks:  newKeyLock(),
		logger: logger,
	}
}

// SaveNew persists the waybill and populates the cache with the saved copy.
func (s *CachedWaybillStore) SaveNew(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error) {
	saved, err := s.repo.Create(ctx, waybill)
	if err != nil {
		return nil, err
	}
	s.refreshCache(ctx, saved)
	return saved, nil
}

// GetByNo returns the cached copy on a hit without touching the
// repository. On a miss the repository is queried and, when the waybill
// exists, the cache is populated before returning. Cache read failures
// degrade to a repository read.
func (s *CachedWaybillStore) GetByNo(ctx context.Context, waybillNo string) (*model.Waybill, error) {
	cached, ok, err := s.cache.Get(ctx, waybillNo)
	if err != nil {
		s.logger.Warn("waybill cache read failed",
			slog.String("waybillNo", waybillNo),
			slog.String("error", err.Error()),
		)
	}
	if ok {
		return cached, nil
	}

	waybill, err := s.repo.GetByNo(ctx, waybillNo)
	if err != nil {
		return nil, err
	}
	s.refreshCache(ctx, waybill)
	return waybill, nil
}

// Update resolves the current record cache-first, applies mutate, persists
// the result and refreshes the cache. Calls for the same waybill number
// are serialized to keep read-modify-write atomic within the process.
func (s *CachedWaybillStore) Update(ctx context.Context, waybillNo string, mutate func(*model.Waybill) error) (*model.Waybill, error) {
	s.locks.Lock(waybillNo)
	defer s.locks.Unlock(waybillNo)

	waybill, err := s.GetByNo(ctx, waybillNo)
	if err != nil {
		return nil, err
	}

	if err := mutate(waybill); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, waybill)
	if err != nil {
		return nil, err
	}
	s.refreshCache(ctx, updated)
	return updated, nil
}

func (s *CachedWaybillStore) refreshCache(ctx context.Context, waybill *model.Waybill) {
	if err := s.cache.Set(ctx, waybill); err != nil {
		s.logger.Warn("waybill cache write failed",
			slog.String("waybillNo", waybill.WaybillNo),
			slog.String("error", err.Error()),
		)
	}
}
