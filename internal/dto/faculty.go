package dto

import (
	"strings"

	"github.com/noah-isme/ecollege-api/internal/models"
)

// CreateFacultyRequest carries every field a new faculty needs.
type CreateFacultyRequest struct {
	Name  string `json:"faculty_name" validate:"required,notblank"`
	Dean  string `json:"faculty_dean" validate:"required,notblank"`
	Email string `json:"faculty_email" validate:"required,notblank"`
}

// Model converts the request into a trimmed row.
func (r CreateFacultyRequest) Model() *models.Faculty {
	return &models.Faculty{
		Name:  strings.TrimSpace(r.Name),
		Dean:  strings.TrimSpace(r.Dean),
		Email: strings.TrimSpace(r.Email),
	}
}

// UpdateFacultyRequest is a partial update; nil fields are left untouched.
type UpdateFacultyRequest struct {
	Name  *string `json:"faculty_name" validate:"omitnil,notblank"`
	Dean  *string `json:"faculty_dean" validate:"omitnil,notblank"`
	Email *string `json:"faculty_email" validate:"omitnil,notblank"`
}

// Empty reports whether no field was supplied.
func (r UpdateFacultyRequest) Empty() bool {
	return r.Name == nil && r.Dean == nil && r.Email == nil
}

// Apply merges the supplied fields onto f.
func (r UpdateFacultyRequest) Apply(f *models.Faculty) {
	mergeString(&f.Name, r.Name)
	mergeString(&f.Dean, r.Dean)
	mergeString(&f.Email, r.Email)
}

// FacultyResponse embeds the faculty's departments without their courses.
type FacultyResponse struct {
	models.Faculty
	Departments []models.Department `json:"departments"`
}

// NewFacultyResponse never leaves Departments nil so it encodes as [].
func NewFacultyResponse(f models.Faculty, departments []models.Department) FacultyResponse {
	if departments == nil {
		departments = []models.Department{}
	}
	return FacultyResponse{Faculty: f, Departments: departments}
}
