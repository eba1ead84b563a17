package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffing/internal/domain"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestProfessionalRepo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfessionalRepository(mock)

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(listProfessionalsQuery)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "profession", "region"}).
				AddRow(int64(1), "Ana Gómez", "Enfermera", "Centro").
				AddRow(int64(2), "Luis Martínez", "Fisioterapeuta", "Centro"))

		professionals, err := repo.List(t.Context())
		require.NoError(t, err)
		require.Len(t, professionals, 2)
		assert.Equal(t, "Luis Martínez", professionals[1].FullName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get by id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(getProfessionalByIDQuery)).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "profession", "region"}).
				AddRow(int64(1), "Ana Gómez", "Enfermera", "Centro"))

		p, err := repo.GetByID(t.Context(), 1)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Centro", p.Region)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get by id - no rows", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(getProfessionalByIDQuery)).
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		p, err := repo.GetByID(t.Context(), 42)
		require.NoError(t, err)
		assert.Nil(t, p)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)
	columns := []string{"id", "code", "client", "service", "region", "profession_required", "details"}

	mock.ExpectQuery(regexp.QuoteMeta(listOrdersQuery)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "ORD-001", "Clínica Central", "Cuidado domiciliario", "Centro", "Enfermera", "visitas"))

	orders, err := repo.List(t.Context())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-001", orders[0].Code)

	mock.ExpectQuery(regexp.QuoteMeta(getOrderByIDQuery)).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	o, err := repo.GetByID(t.Context(), 9)
	require.NoError(t, err)
	assert.Nil(t, o)

	mock.ExpectQuery(regexp.QuoteMeta(getOrderByIDQuery)).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.GetByID(t.Context(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get order 1")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSlotRepository(mock)
	columns := []string{"id", "order_id", "professional_id", "start_at", "end_at"}
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("list filtered", func(t *testing.T) {
		professionalID := int64(3)
		mock.ExpectQuery(regexp.QuoteMeta(listSlotsQuery + " AND professional_id = $1 ORDER BY id")).
			WithArgs(professionalID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(7), int64(1), professionalID, start, end))

		slots, err := repo.List(t.Context(), domain.ScheduleFilter{ProfessionalID: &professionalID})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, int64(7), slots[0].ID)
		assert.True(t, slots[0].Start.Equal(start))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list all", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(listSlotsQuery + " ORDER BY id")).
			WillReturnRows(pgxmock.NewRows(columns))

		slots, err := repo.List(t.Context(), domain.ScheduleFilter{})
		require.NoError(t, err)
		assert.Empty(t, slots)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(insertSlotQuery)).
			WithArgs(int64(1), int64(3), start, end).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

		slot := domain.ScheduleSlot{OrderID: 1, ProfessionalID: 3, Start: start, End: end}
		require.NoError(t, repo.Create(t.Context(), &slot))
		assert.Equal(t, int64(11), slot.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresSlotTxManager(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("commit", func(t *testing.T) {
		mock := newMockPool(t)
		manager := NewPostgresSlotTxManager(mock)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockProfessionalQuery)).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(regexp.QuoteMeta(insertSlotQuery)).
			WithArgs(int64(1), int64(3), start, end).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		err := manager.WithProfessionalLock(t.Context(), 3, func(ctx context.Context, slots SlotRepository) error {
			return slots.Create(ctx, &domain.ScheduleSlot{OrderID: 1, ProfessionalID: 3, Start: start, End: end})
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		mock := newMockPool(t)
		manager := NewPostgresSlotTxManager(mock)
		conflict := domain.NewError(domain.ErrConflict, "taken")

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockProfessionalQuery)).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectRollback()

		err := manager.WithProfessionalLock(t.Context(), 3, func(ctx context.Context, slots SlotRepository) error {
			return conflict
		})
		require.ErrorIs(t, err, domain.ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock failure", func(t *testing.T) {
		mock := newMockPool(t)
		manager := NewPostgresSlotTxManager(mock)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockProfessionalQuery)).
			WithArgs(int64(3)).
			WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		called := false
		err := manager.WithProfessionalLock(t.Context(), 3, func(ctx context.Context, slots SlotRepository) error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
