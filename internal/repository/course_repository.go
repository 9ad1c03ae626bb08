package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/noah-isme/ecollege-api/internal/models"
	"github.com/noah-isme/ecollege-api/pkg/database"
)

const courseColumns = "id, course_name, course_adviser, course_duration, department_id"

// CourseRepository handles persistence for courses.
type CourseRepository struct {
	db database.Querier
}

// NewCourseRepository creates a new repository instance.
func NewCourseRepository(db database.Querier) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.db)
}

// List returns every course ordered by id.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := "SELECT " + courseColumns + " FROM courses ORDER BY id"
	courses := []models.Course{}
	if err := r.q(ctx).SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListByDepartmentIDs returns the courses owned by any of the departments.
func (r *CourseRepository) ListByDepartmentIDs(ctx context.Context, departmentIDs []int64) ([]models.Course, error) {
	courses := []models.Course{}
	if len(departmentIDs) == 0 {
		return courses, nil
	}
	query := "SELECT " + courseColumns + " FROM courses WHERE department_id = ANY($1) ORDER BY id"
	if err := r.q(ctx).SelectContext(ctx, &courses, query, pq.Array(departmentIDs)); err != nil {
		return nil, fmt.Errorf("list courses by department: %w", err)
	}
	return courses, nil
}

// FindByID returns a course by id or sql.ErrNoRows.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	query := "SELECT " + courseColumns + " FROM courses WHERE id = $1"
	var course models.Course
	if err := r.q(ctx).GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts the course and stores the generated id on it.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO courses (course_name, course_adviser, course_duration, department_id) VALUES ($1, $2, $3, $4) RETURNING id`
	row := r.q(ctx).QueryRowxContext(ctx, query, course.Name, course.Adviser, course.Duration, course.DepartmentID)
	if err := row.Scan(&course.ID); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	const query = `UPDATE courses SET course_name = $1, course_adviser = $2, course_duration = $3, department_id = $4 WHERE id = $5`
	res, err := r.q(ctx).ExecContext(ctx, query, course.Name, course.Adviser, course.Duration, course.DepartmentID, course.ID)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return requireRow(res)
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.q(ctx).ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return requireRow(res)
}
