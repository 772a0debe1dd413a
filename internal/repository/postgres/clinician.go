package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type clinicianRepository struct {
	db *sqlx.DB
}

func NewClinicianRepository(db *sqlx.DB) repository.ClinicianRepository {
	return &clinicianRepository{db: db}
}

func (r *clinicianRepository) Create(ctx context.Context, clinician *model.Clinician) (*model.Clinician, error) {
	query := `
		INSERT INTO clinicians (first_name, last_name, state, npi_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		clinician.FirstName,
		clinician.LastName,
		clinician.State,
		clinician.NPINumber,
	).Scan(&clinician.ID)
	if err != nil {
		return nil, mapError(err, "clinician")
	}
	return clinician, nil
}

func (r *clinicianRepository) Get(ctx context.Context, id int64) (*model.Clinician, error) {
	query := `SELECT id, first_name, last_name, state, npi_number FROM clinicians WHERE id = $1`
	var clinician model.Clinician
	if err := r.db.GetContext(ctx, &clinician, query, id); err != nil {
		return nil, mapError(err, "clinician")
	}
	return &clinician, nil
}

func (r *clinicianRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clinicians WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "clinician")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err, "clinician")
	}
	if rows == 0 {
		return mapError(sql.ErrNoRows, "clinician")
	}
	return nil
}

func (r *clinicianRepository) List(ctx context.Context) ([]*model.Clinician, error) {
	query := `SELECT id, first_name, last_name, state, npi_number FROM clinicians`
	clinicians := []*model.Clinician{}
	if err := r.db.SelectContext(ctx, &clinicians, query); err != nil {
		return nil, mapError(err, "clinician")
	}
	return clinicians, nil
}
