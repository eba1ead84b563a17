package repository

import (
	"context"
	"fmt"

	"staffing/internal/domain"
)

const (
	slotColumns           = `id, order_id, professional_id, start_at, end_at`
	listSlotsQuery        = `SELECT ` + slotColumns + ` FROM schedule_slots WHERE 1=1`
	listProfessionalSlots = `SELECT ` + slotColumns + ` FROM schedule_slots WHERE professional_id = $1 ORDER BY id`
	insertSlotQuery       = `INSERT INTO schedule_slots (order_id, professional_id, start_at, end_at) VALUES ($1, $2, $3, $4) RETURNING id`
	lockProfessionalQuery = `SELECT pg_advisory_xact_lock($1)`
)

type SlotRepo struct {
	db DBTX
}

func NewSlotRepository(db DBTX) *SlotRepo {
	return &SlotRepo{db: db}
}

func (r *SlotRepo) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleSlot, error) {
	query := listSlotsQuery
	var args []any

	if filter.ProfessionalID != nil {
		args = append(args, *filter.ProfessionalID)
		query += fmt.Sprintf(" AND professional_id = $%d", len(args))
	}
	query += " ORDER BY id"

	return r.query(ctx, query, args...)
}

func (r *SlotRepo) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.ScheduleSlot, error) {
	return r.query(ctx, listProfessionalSlots, professionalID)
}

func (r *SlotRepo) Create(ctx context.Context, slot *domain.ScheduleSlot) error {
	err := r.db.QueryRow(ctx, insertSlotQuery, slot.OrderID, slot.ProfessionalID, slot.Start, slot.End).Scan(&slot.ID)
	if err != nil {
		return fmt.Errorf("insert schedule slot: %w", err)
	}

	return nil
}

func (r *SlotRepo) query(ctx context.Context, query string, args ...any) ([]domain.ScheduleSlot, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedule slots: %w", err)
	}
	defer rows.Close()

	slots := make([]domain.ScheduleSlot, 0)
	for rows.Next() {
		var slot domain.ScheduleSlot
		if err := rows.Scan(&slot.ID, &slot.OrderID, &slot.ProfessionalID, &slot.Start, &slot.End); err != nil {
			return nil, fmt.Errorf("scan schedule slot: %w", err)
		}
		slot.Start = slot.Start.UTC()
		slot.End = slot.End.UTC()
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule slots: %w", err)
	}

	return slots, nil
}

// PostgresSlotTxManager serializes writers per professional with a
// transaction-scoped advisory lock.
type PostgresSlotTxManager struct {
	db TxBeginner
}

func NewPostgresSlotTxManager(db TxBeginner) *PostgresSlotTxManager {
	return &PostgresSlotTxManager{db: db}
}

func (m *PostgresSlotTxManager) WithProfessionalLock(ctx context.Context, professionalID int64, fn func(ctx context.Context, slots SlotRepository) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, lockProfessionalQuery, professionalID); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("lock professional %d: %w", professionalID, err)
	}

	if err := fn(ctx, NewSlotRepository(tx)); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			return fmt.Errorf("rollback: %w (after: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
