package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"staffing/internal/domain"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TxBeginner interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repositories struct {
	Professional ProfessionalRepository
	Order        OrderRepository
	Slot         SlotRepository
	SlotTx       SlotTxManager
}

func NewRepositories(db TxBeginner) *Repositories {
	return &Repositories{
		Professional: NewProfessionalRepository(db),
		Order:        NewOrderRepository(db),
		Slot:         NewSlotRepository(db),
		SlotTx:       NewPostgresSlotTxManager(db),
	}
}

func NewMemoryRepositories(store *MemoryStore) *Repositories {
	return &Repositories{
		Professional: store.Professionals(),
		Order:        store.Orders(),
		Slot:         store.Slots(),
		SlotTx:       store,
	}
}

// GetByID methods return nil without an error when the record does not exist.

type ProfessionalRepository interface {
	List(ctx context.Context) ([]domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

type SlotRepository interface {
	List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleSlot, error)
	ListByProfessional(ctx context.Context, professionalID int64) ([]domain.ScheduleSlot, error)
	// Create stores the slot and sets slot.ID. Inside WithProfessionalLock the
	// id may only be set once the transaction commits.
	Create(ctx context.Context, slot *domain.ScheduleSlot) error
}

// SlotTxManager runs fn while holding an exclusive lock on one professional's
// calendar. Slots created through the repository passed to fn are committed
// only if fn returns nil.
type SlotTxManager interface {
	WithProfessionalLock(ctx context.Context, professionalID int64, fn func(ctx context.Context, slots SlotRepository) error) error
}
