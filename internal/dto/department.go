package dto

import (
	"strings"

	"github.com/noah-isme/ecollege-api/internal/models"
)

// CreateDepartmentRequest carries every field a new department needs.
type CreateDepartmentRequest struct {
	Name      string `json:"dept_name" validate:"required,notblank"`
	Head      string `json:"dept_head" validate:"required,notblank"`
	Email     string `json:"dept_email" validate:"required,notblank"`
	FacultyID int64  `json:"faculty_id" validate:"required,gt=0"`
}

// Model converts the request into a trimmed row.
func (r CreateDepartmentRequest) Model() *models.Department {
	return &models.Department{
		Name:      strings.TrimSpace(r.Name),
		Head:      strings.TrimSpace(r.Head),
		Email:     strings.TrimSpace(r.Email),
		FacultyID: r.FacultyID,
	}
}

// UpdateDepartmentRequest is a partial update; nil fields are left untouched.
type UpdateDepartmentRequest struct {
	Name      *string `json:"dept_name" validate:"omitnil,notblank"`
	Head      *string `json:"dept_head" validate:"omitnil,notblank"`
	Email     *string `json:"dept_email" validate:"omitnil,notblank"`
	FacultyID *int64  `json:"faculty_id" validate:"omitnil,gt=0"`
}

// Empty reports whether no field was supplied.
func (r UpdateDepartmentRequest) Empty() bool {
	return r.Name == nil && r.Head == nil && r.Email == nil && r.FacultyID == nil
}

// Apply merges the supplied fields onto d.
func (r UpdateDepartmentRequest) Apply(d *models.Department) {
	mergeString(&d.Name, r.Name)
	mergeString(&d.Head, r.Head)
	mergeString(&d.Email, r.Email)
	if r.FacultyID != nil {
		d.FacultyID = *r.FacultyID
	}
}

// DepartmentResponse embeds the department's courses.
type DepartmentResponse struct {
	models.Department
	Courses []models.Course `json:"courses"`
}

// NewDepartmentResponse never leaves Courses nil so it encodes as [].
func NewDepartmentResponse(d models.Department, courses []models.Course) DepartmentResponse {
	if courses == nil {
		courses = []models.Course{}
	}
	return DepartmentResponse{Department: d, Courses: courses}
}
