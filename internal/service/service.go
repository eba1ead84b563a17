package service

import (
	"context"

	"go.uber.org/zap"

	"staffing/internal/domain"
	"staffing/internal/repository"
	"staffing/internal/storage"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	// FileStorage receives schedule receipts. Nil disables them.
	FileStorage storage.FileStorage
	// Notifier is told about committed schedules. Optional.
	Notifier ScheduleNotifier
}

type Services struct {
	Directory    DirectoryService
	Availability AvailabilityService
	Schedule     ScheduleService
}

func NewServices(deps Deps) *Services {
	availability := NewAvailabilityService(deps.Repos.Professional, deps.Repos.Slot, deps.Logger)

	return &Services{
		Directory:    NewDirectoryService(deps.Repos.Order, deps.Repos.Professional, deps.Repos.Slot, deps.Logger),
		Availability: availability,
		Schedule: NewScheduleService(
			deps.Repos.Order,
			deps.Repos.Professional,
			deps.Repos.SlotTx,
			availability,
			deps.FileStorage,
			deps.Notifier,
			deps.Logger,
		),
	}
}

type DirectoryService interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListProfessionals(ctx context.Context) ([]domain.Professional, error)
	GetProfessional(ctx context.Context, id int64) (*domain.Professional, error)
	ListSchedules(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleSlot, error)
}

type AvailabilityService interface {
	// FindAvailable returns the professionals matching the query that are free on
	// every day of its range. An empty result is not an error.
	FindAvailable(ctx context.Context, query domain.AvailabilityQuery) ([]domain.Professional, error)
}

type ScheduleNotifier interface {
	ScheduleCreated(resp *domain.ScheduleResponse)
}

type ScheduleService interface {
	Create(ctx context.Context, req domain.ScheduleRequest) (*domain.ScheduleResponse, error)
}
