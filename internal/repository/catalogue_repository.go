package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/ecollege-api/internal/models"
	"github.com/noah-isme/ecollege-api/pkg/database"
)

// CatalogueRepository reads the joined faculty/department/course hierarchy.
type CatalogueRepository struct {
	db database.Querier
}

// NewCatalogueRepository creates a new repository instance.
func NewCatalogueRepository(db database.Querier) *CatalogueRepository {
	return &CatalogueRepository{db: db}
}

// Entries returns one row per course, plus one row for each faculty or
// department that has no children.
func (r *CatalogueRepository) Entries(ctx context.Context) ([]models.CatalogueEntry, error) {
	const query = `SELECT f.faculty_name, f.faculty_dean, d.dept_name, d.dept_head, c.course_name, c.course_adviser, c.course_duration
FROM faculties f
LEFT JOIN departments d ON d.faculty_id = f.id
LEFT JOIN courses c ON c.department_id = d.id
ORDER BY f.id, d.id, c.id`
	entries := []models.CatalogueEntry{}
	if err := database.QuerierFrom(ctx, r.db).SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list catalogue: %w", err)
	}
	return entries, nil
}
