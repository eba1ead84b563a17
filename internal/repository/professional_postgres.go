package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"staffing/internal/domain"
)

const (
	listProfessionalsQuery   = `SELECT id, full_name, profession, region FROM professionals ORDER BY id`
	getProfessionalByIDQuery = `SELECT id, full_name, profession, region FROM professionals WHERE id = $1`
)

type ProfessionalRepo struct {
	db DBTX
}

func NewProfessionalRepository(db DBTX) *ProfessionalRepo {
	return &ProfessionalRepo{db: db}
}

func (r *ProfessionalRepo) List(ctx context.Context) ([]domain.Professional, error) {
	rows, err := r.db.Query(ctx, listProfessionalsQuery)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()

	professionals := make([]domain.Professional, 0)
	for rows.Next() {
		var p domain.Professional
		if err := rows.Scan(&p.ID, &p.FullName, &p.Profession, &p.Region); err != nil {
			return nil, fmt.Errorf("scan professional: %w", err)
		}
		professionals = append(professionals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate professionals: %w", err)
	}

	return professionals, nil
}

func (r *ProfessionalRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	var p domain.Professional
	err := r.db.QueryRow(ctx, getProfessionalByIDQuery, id).Scan(&p.ID, &p.FullName, &p.Profession, &p.Region)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get professional %d: %w", id, err)
	}

	return &p, nil
}
