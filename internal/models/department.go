package models

// Department belongs to exactly one faculty and owns courses.
type Department struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"dept_name" json:"dept_name"`
	Head      string `db:"dept_head" json:"dept_head"`
	Email     string `db:"dept_email" json:"dept_email"`
	FacultyID int64  `db:"faculty_id" json:"faculty_id"`
}
