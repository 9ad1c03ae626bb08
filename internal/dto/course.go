package dto

import (
	"strings"

	"github.com/noah-isme/ecollege-api/internal/models"
)

// CreateCourseRequest carries every field a new course needs.
type CreateCourseRequest struct {
	Name         string `json:"course_name" validate:"required,notblank"`
	Adviser      string `json:"course_adviser" validate:"required,notblank"`
	Duration     string `json:"course_duration" validate:"required,notblank"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0"`
}

// Model converts the request into a trimmed row.
func (r CreateCourseRequest) Model() *models.Course {
	return &models.Course{
		Name:         strings.TrimSpace(r.Name),
		Adviser:      strings.TrimSpace(r.Adviser),
		Duration:     strings.TrimSpace(r.Duration),
		DepartmentID: r.DepartmentID,
	}
}

// UpdateCourseRequest is a partial update; nil fields are left untouched.
type UpdateCourseRequest struct {
	Name         *string `json:"course_name" validate:"omitnil,notblank"`
	Adviser      *string `json:"course_adviser" validate:"omitnil,notblank"`
	Duration     *string `json:"course_duration" validate:"omitnil,notblank"`
	DepartmentID *int64  `json:"department_id" validate:"omitnil,gt=0"`
}

// Empty reports whether no field was supplied.
func (r UpdateCourseRequest) Empty() bool {
	return r.Name == nil && r.Adviser == nil && r.Duration == nil && r.DepartmentID == nil
}

// Apply merges the supplied fields onto c.
func (r UpdateCourseRequest) Apply(c *models.Course) {
	mergeString(&c.Name, r.Name)
	mergeString(&c.Adviser, r.Adviser)
	mergeString(&c.Duration, r.Duration)
	if r.DepartmentID != nil {
		c.DepartmentID = *r.DepartmentID
	}
}
