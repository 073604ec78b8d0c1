package test

import (
	"context"

	domainErrors "github.com/logistics-platform/waybill/internal/domain/errors"
	"github.com/logistics-platform/waybill/internal/domain/model"
)

// WaybillRepositoryStub stores waybills in-memory and records call counts
// so tests can assert which collaborator served a read.
type WaybillRepositoryStub struct {
	CreateFn  func(context.Context, *model.Waybill) (*model.Waybill, error)
	UpdateFn  func(context.Context, *model.Waybill) (*model.Waybill, error)
	GetByNoFn func(context.Context, string) (*model.Waybill, error)
	ListAllFn func(context.Context) ([]model.Waybill, error)

	Waybills map[string]*model.Waybill
	Next     int64

	CreateCalls  int
	UpdateCalls  int
	GetByNoCalls int
	ListAllCalls int
}

// NewWaybillRepositoryStub constructs stub repository with initialized maps.
func NewWaybillRepositoryStub() *WaybillRepositoryStub {
	return &WaybillRepositoryStub{
		Waybills: make(map[string]*model.Waybill),
		Next:     1,
	}
}

// Create stores a copy of the waybill unless the number is taken.
func (s *WaybillRepositoryStub) Create(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error) {
	s.CreateCalls++
	if s.CreateFn != nil {
		return s.CreateFn(ctx, waybill)
	}
	if s.Waybills == nil {
		s.Waybills = make(map[string]*model.Waybill)
	}
	if _, exists := s.Waybills[waybill.WaybillNo]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	saved := *waybill
	saved.ID = s.Next
	s.Next++
	s.Waybills[saved.WaybillNo] = &saved
	result := saved
	return &result, nil
}

// Update replaces the stored waybill with the same number.
func (s *WaybillRepositoryStub) Update(ctx context.Context, waybill *model.Waybill) (*model.Waybill, error) {
	s.UpdateCalls++
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, waybill)
	}
	if _, exists := s.Waybills[waybill.WaybillNo]; !exists {
		return nil, domainErrors.ErrNotFound
	}
	saved := *waybill
	s.Waybills[saved.WaybillNo] = &saved
	result := saved
	return &result, nil
}

// GetByNo fetches waybill by number or returns not found.
func (s *WaybillRepositoryStub) GetByNo(ctx context.Context, waybillNo string) (*model.Waybill, error) {
	s.GetByNoCalls++
	if s.GetByNoFn != nil {
		return s.GetByNoFn(ctx, waybillNo)
	}
	if waybill, ok := s.Waybills[waybillNo]; ok {
		result := *waybill
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns all stored waybills.
func (s *WaybillRepositoryStub) ListAll(ctx context.Context) ([]model.Waybill, error) {
	s.ListAllCalls++
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	result := make([]model.Waybill, 0, len(s.Waybills))
	for _, waybill := range s.Waybills {
		result = append(result, *waybill)
	}
	return result, nil
}

// WaybillCacheStub keeps cache entries in-memory with call accounting.
type WaybillCacheStub struct {
	GetFn func(context.Context, string) (*model.Waybill, bool, error)
	SetFn func(context.Context, *model.Waybill) error

	Entries map[string]*model.Waybill
	GetErr  error
	SetErr  error

	GetCalls int
	SetCalls int
}

// NewWaybillCacheStub constructs stub cache with initialized map.
func NewWaybillCacheStub() *WaybillCacheStub {
	return &WaybillCacheStub{Entries: make(map[string]*model.Waybill)}
}

// Get looks up a cached waybill.
func (s *WaybillCacheStub) Get(ctx context.Context, waybillNo string) (*model.Waybill, bool, error) {
	s.GetCalls++
	if s.GetFn != nil {
		return s.GetFn(ctx, waybillNo)
	}
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	if waybill, ok := s.Entries[waybillNo]; ok {
		result := *waybill
		return &result, true, nil
	}
	return nil, false, nil
}

// Set stores a copy keyed by waybill number.
func (s *WaybillCacheStub) Set(ctx context.Context, waybill *model.Waybill) error {
	s.SetCalls++
	if s.SetFn != nil {
		return s.SetFn(ctx, waybill)
	}
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.Entries == nil {
		s.Entries = make(map[string]*model.Waybill)
	}
	saved := *waybill
	s.Entries[saved.WaybillNo] = &saved
	return nil
}
