package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/ecollege-api/internal/models"
	"github.com/noah-isme/ecollege-api/pkg/database"
)

const departmentColumns = "id, dept_name, dept_head, dept_email, faculty_id"

// DepartmentRepository handles persistence for departments.
type DepartmentRepository struct {
	db database.Querier
}

// NewDepartmentRepository creates a new repository instance.
func NewDepartmentRepository(db database.Querier) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.db)
}

// List returns every department ordered by id.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	query := "SELECT " + departmentColumns + " FROM departments ORDER BY id"
	departments := []models.Department{}
	if err := r.q(ctx).SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// ListByFacultyIDs returns the departments owned by any of the faculties.
func (r *DepartmentRepository) ListByFacultyIDs(ctx context.Context, facultyIDs []int64) ([]models.Department, error) {
	departments := []models.Department{}
	if len(facultyIDs) == 0 {
		return departments, nil
	}
	query := "SELECT " + departmentColumns + " FROM departments WHERE faculty_id = ANY($1) ORDER BY id"
	if err := r.q(ctx).SelectContext(ctx, &departments, query, pq.Array(facultyIDs)); err != nil {
		return nil, fmt.Errorf("list departments by faculty: %w", err)
	}
	return departments, nil
}

// FindByID returns a department by id or sql.ErrNoRows.
func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*models.Department, error) {
	query := "SELECT " + departmentColumns + " FROM departments WHERE id = $1"
	var department models.Department
	if err := r.q(ctx).GetContext(ctx, &department, query, id); err != nil {
		return nil, err
	}
	return &department, nil
}

// Exists reports whether a department row with id is present.
func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q(ctx), "departments", id)
}

// Create inserts the department and stores the generated id on it.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	const query = `INSERT INTO departments (dept_name, dept_head, dept_email, faculty_id) VALUES ($1, $2, $3, $4) RETURNING id`
	row := r.q(ctx).QueryRowxContext(ctx, query, department.Name, department.Head, department.Email, department.FacultyID)
	if err := row.Scan(&department.ID); err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the department.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	const query = `UPDATE departments SET dept_name = $1, dept_head = $2, dept_email = $3, faculty_id = $4 WHERE id = $5`
	res, err := r.q(ctx).ExecContext(ctx, query, department.Name, department.Head, department.Email, department.FacultyID, department.ID)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return requireRow(res)
}

// Delete removes the department together with its courses.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	return inTx(ctx, r.q(ctx), "delete department", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE department_id = $1`, id); err != nil {
			return fmt.Errorf("delete department courses: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete department: %w", err)
		}
		return requireRow(res)
	})
}
