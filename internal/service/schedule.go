package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"staffing/internal/domain"
	"staffing/internal/repository"
	"staffing/internal/storage"
)

type ScheduleServiceImpl struct {
	orderRepo        repository.OrderRepository
	professionalRepo repository.ProfessionalRepository
	txManager        repository.SlotTxManager
	availability     AvailabilityService
	receipts         storage.FileStorage
	notifier         ScheduleNotifier
	logger           *zap.Logger
}

func NewScheduleService(
	orderRepo repository.OrderRepository,
	professionalRepo repository.ProfessionalRepository,
	txManager repository.SlotTxManager,
	availability AvailabilityService,
	receipts storage.FileStorage,
	notifier ScheduleNotifier,
	logger *zap.Logger,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		orderRepo:        orderRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		availability:     availability,
		receipts:         receipts,
		notifier:         notifier,
		logger:           logger,
	}
}

// Create assigns a professional to the order and commits one slot per matching
// day. Either every slot is committed or none is.
func (s *ScheduleServiceImpl) Create(ctx context.Context, req domain.ScheduleRequest) (*domain.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		s.logger.Error("failed to get order", zap.Int64("order_id", req.OrderID), zap.Error(err))
		return nil, fmt.Errorf("get order %d: %w", req.OrderID, err)
	}
	if order == nil {
		return nil, domain.NewError(domain.ErrNotFound, "order %d not found", req.OrderID)
	}

	pool, err := s.availability.FindAvailable(ctx, req.Query())
	if err != nil {
		return nil, err
	}

	professional, err := s.resolveProfessional(ctx, req.ProfessionalID, pool)
	if err != nil {
		return nil, err
	}

	windows := plannedWindows(req)
	if len(windows) == 0 {
		return nil, domain.NewError(domain.ErrValidation, "the schedule request did not produce any time slots")
	}

	var created []domain.ScheduleSlot
	err = s.txManager.WithProfessionalLock(ctx, professional.ID, func(ctx context.Context, slots repository.SlotRepository) error {
		existing, err := slots.ListByProfessional(ctx, professional.ID)
		if err != nil {
			return fmt.Errorf("list slots of professional %d: %w", professional.ID, err)
		}

		for _, window := range windows {
			if domain.OverlapsAny(window, existing) {
				return domain.NewError(domain.ErrConflict,
					"professional %d is no longer available for one of the requested slots", professional.ID)
			}
			existing = append(existing, domain.ScheduleSlot{Start: window.Start, End: window.End})
		}

		// Ids are filled in by the store, at the latest when the lock commits.
		created = make([]domain.ScheduleSlot, len(windows))
		for i, window := range windows {
			created[i] = domain.ScheduleSlot{
				OrderID:        order.ID,
				ProfessionalID: professional.ID,
				Start:          window.Start,
				End:            window.End,
			}
			if err := slots.Create(ctx, &created[i]); err != nil {
				return fmt.Errorf("create slot: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("schedule not committed",
			zap.Int64("order_id", order.ID),
			zap.Int64("professional_id", professional.ID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := &domain.ScheduleResponse{
		CreatedSlots: created,
		Professional: *professional,
		Order:        *order,
	}

	s.logger.Info("schedule created",
		zap.Int64("order_id", order.ID),
		zap.Int64("professional_id", professional.ID),
		zap.Int("slots", len(created)),
	)

	s.storeReceipt(ctx, resp)
	if s.notifier != nil {
		s.notifier.ScheduleCreated(resp)
	}

	return resp, nil
}

func (s *ScheduleServiceImpl) resolveProfessional(ctx context.Context, id *int64, pool []domain.Professional) (*domain.Professional, error) {
	if id == nil || *id == 0 {
		if len(pool) == 0 {
			return nil, domain.NewError(domain.ErrUnavailable, "no professionals available for the requested period")
		}
		return &pool[0], nil
	}

	professional, err := s.professionalRepo.GetByID(ctx, *id)
	if err != nil {
		s.logger.Error("failed to get professional", zap.Int64("professional_id", *id), zap.Error(err))
		return nil, fmt.Errorf("get professional %d: %w", *id, err)
	}
	if professional == nil {
		return nil, domain.NewError(domain.ErrNotFound, "professional %d not found", *id)
	}

	for _, candidate := range pool {
		if candidate.ID == professional.ID {
			return professional, nil
		}
	}
	return nil, domain.NewError(domain.ErrConflict, "the selected professional is not available for the requested period")
}

// plannedWindows lists the request's daily windows on the days its weekday filter allows.
func plannedWindows(req domain.ScheduleRequest) []domain.Interval {
	var windows []domain.Interval
	for day := range domain.DaysOn(req.StartDate, req.EndDate, req.Weekdays) {
		windows = append(windows, domain.Window(day, req.StartTime, req.EndTime))
	}
	return windows
}

func (s *ScheduleServiceImpl) storeReceipt(ctx context.Context, resp *domain.ScheduleResponse) {
	if s.receipts == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to encode schedule receipt", zap.Error(err))
		return
	}

	objectName := storage.ReceiptObjectName(resp.Order.Code)
	if err := s.receipts.UploadFile(ctx, objectName, data, "application/json"); err != nil {
		s.logger.Warn("failed to upload schedule receipt", zap.String("object", objectName), zap.Error(err))
		return
	}

	s.logger.Debug("schedule receipt uploaded", zap.String("object", objectName))
}
