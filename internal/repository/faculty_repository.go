package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ecollege-api/internal/models"
	"github.com/noah-isme/ecollege-api/pkg/database"
)

const facultyColumns = "id, faculty_name, faculty_dean, faculty_email"

// FacultyRepository handles persistence for faculties.
type FacultyRepository struct {
	db database.Querier
}

// NewFacultyRepository creates a new repository instance.
func NewFacultyRepository(db database.Querier) *FacultyRepository {
	return &FacultyRepository{db: db}
}

func (r *FacultyRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.db)
}

// List returns every faculty ordered by id.
func (r *FacultyRepository) List(ctx context.Context) ([]models.Faculty, error) {
	query := "SELECT " + facultyColumns + " FROM faculties ORDER BY id"
	faculties := []models.Faculty{}
	if err := r.q(ctx).SelectContext(ctx, &faculties, query); err != nil {
		return nil, fmt.Errorf("list faculties: %w", err)
	}
	return faculties, nil
}

// FindByID returns a faculty by id or sql.ErrNoRows.
func (r *FacultyRepository) FindByID(ctx context.Context, id int64) (*models.Faculty, error) {
	query := "SELECT " + facultyColumns + " FROM faculties WHERE id = $1"
	var faculty models.Faculty
	if err := r.q(ctx).GetContext(ctx, &faculty, query, id); err != nil {
		return nil, err
	}
	return &faculty, nil
}

// Exists reports whether a faculty row with id is present.
func (r *FacultyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q(ctx), "faculties", id)
}

// Create inserts the faculty and stores the generated id on it.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	const query = `INSERT INTO faculties (faculty_name, faculty_dean, faculty_email) VALUES ($1, $2, $3) RETURNING id`
	if err := r.q(ctx).QueryRowxContext(ctx, query, faculty.Name, faculty.Dean, faculty.Email).Scan(&faculty.ID); err != nil {
		return fmt.Errorf("create faculty: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the faculty.
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	const query = `UPDATE faculties SET faculty_name = $1, faculty_dean = $2, faculty_email = $3 WHERE id = $4`
	res, err := r.q(ctx).ExecContext(ctx, query, faculty.Name, faculty.Dean, faculty.Email, faculty.ID)
	if err != nil {
		return fmt.Errorf("update faculty: %w", err)
	}
	return requireRow(res)
}

// Delete removes the faculty together with its departments and their courses.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	return inTx(ctx, r.q(ctx), "delete faculty", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE department_id IN (SELECT id FROM departments WHERE faculty_id = $1)`, id); err != nil {
			return fmt.Errorf("delete faculty courses: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM departments WHERE faculty_id = $1`, id); err != nil {
			return fmt.Errorf("delete faculty departments: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM faculties WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete faculty: %w", err)
		}
		return requireRow(res)
	})
}

func exists(ctx context.Context, q database.Querier, table string, id int64) (bool, error) {
	var found int
	err := q.GetContext(ctx, &found, "SELECT 1 FROM "+table+" WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check %s row: %w", table, err)
	}
	return true, nil
}

// requireRow turns a zero-row write into sql.ErrNoRows.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
