package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"staffing/internal/domain"
	"staffing/internal/repository"
)

type AvailabilityServiceImpl struct {
	professionalRepo repository.ProfessionalRepository
	slotRepo         repository.SlotRepository
	logger           *zap.Logger
}

func NewAvailabilityService(
	professionalRepo repository.ProfessionalRepository,
	slotRepo repository.SlotRepository,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		professionalRepo: professionalRepo,
		slotRepo:         slotRepo,
		logger:           logger,
	}
}

func (s *AvailabilityServiceImpl) FindAvailable(ctx context.Context, query domain.AvailabilityQuery) ([]domain.Professional, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	professionals, err := s.professionalRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list professionals", zap.Error(err))
		return nil, fmt.Errorf("list professionals: %w", err)
	}

	available := make([]domain.Professional, 0)
	for _, p := range professionals {
		if !p.Matches(query.Profession, query.Region) {
			continue
		}

		slots, err := s.slotRepo.ListByProfessional(ctx, p.ID)
		if err != nil {
			s.logger.Error("failed to list professional slots", zap.Int64("professional_id", p.ID), zap.Error(err))
			return nil, fmt.Errorf("list slots of professional %d: %w", p.ID, err)
		}

		if freeThroughout(query, slots) {
			available = append(available, p)
		}
	}

	s.logger.Debug("availability computed",
		zap.String("profession", query.Profession),
		zap.String("region", query.Region),
		zap.Stringer("start_date", query.StartDate),
		zap.Stringer("end_date", query.EndDate),
		zap.Int("available", len(available)),
	)

	return available, nil
}

// freeThroughout reports whether none of the query's daily windows overlaps slots.
func freeThroughout(query domain.AvailabilityQuery, slots []domain.ScheduleSlot) bool {
	if len(slots) == 0 {
		return true
	}
	for day := range domain.Days(query.StartDate, query.EndDate) {
		if domain.OverlapsAny(domain.Window(day, query.StartTime, query.EndTime), slots) {
			return false
		}
	}
	return true
}
