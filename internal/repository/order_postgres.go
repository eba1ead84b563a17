package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"staffing/internal/domain"
)

const (
	listOrdersQuery   = `SELECT id, code, client, service, region, profession_required, details FROM orders ORDER BY id`
	getOrderByIDQuery = `SELECT id, code, client, service, region, profession_required, details FROM orders WHERE id = $1`
)

type OrderRepo struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, listOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Code, &o.Client, &o.Service, &o.Region, &o.ProfessionRequired, &o.Details); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, getOrderByIDQuery, id).
		Scan(&o.ID, &o.Code, &o.Client, &o.Service, &o.Region, &o.ProfessionRequired, &o.Details)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	return &o, nil
}
