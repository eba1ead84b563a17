package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"staffing/internal/domain"
	"staffing/internal/repository"
)

type DirectoryServiceImpl struct {
	orderRepo        repository.OrderRepository
	professionalRepo repository.ProfessionalRepository
	slotRepo         repository.SlotRepository
	logger           *zap.Logger
}

func NewDirectoryService(
	orderRepo repository.OrderRepository,
	professionalRepo repository.ProfessionalRepository,
	slotRepo repository.SlotRepository,
	logger *zap.Logger,
) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{
		orderRepo:        orderRepo,
		professionalRepo: professionalRepo,
		slotRepo:         slotRepo,
		logger:           logger,
	}
}

func (s *DirectoryServiceImpl) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *DirectoryServiceImpl) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get order", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if order == nil {
		return nil, domain.NewError(domain.ErrNotFound, "order %d not found", id)
	}
	return order, nil
}

func (s *DirectoryServiceImpl) ListProfessionals(ctx context.Context) ([]domain.Professional, error) {
	professionals, err := s.professionalRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list professionals", zap.Error(err))
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return professionals, nil
}

func (s *DirectoryServiceImpl) GetProfessional(ctx context.Context, id int64) (*domain.Professional, error) {
	professional, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get professional", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get professional %d: %w", id, err)
	}
	if professional == nil {
		return nil, domain.NewError(domain.ErrNotFound, "professional %d not found", id)
	}
	return professional, nil
}

func (s *DirectoryServiceImpl) ListSchedules(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleSlot, error) {
	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list schedule slots", zap.Error(err))
		return nil, fmt.Errorf("list schedule slots: %w", err)
	}
	return slots, nil
}
