package models

// Course belongs to exactly one department.
type Course struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"course_name" json:"course_name"`
	Adviser      string `db:"course_adviser" json:"course_adviser"`
	Duration     string `db:"course_duration" json:"course_duration"`
	DepartmentID int64  `db:"department_id" json:"department_id"`
}
