package models

// Faculty is the root of the academic hierarchy and owns departments.
type Faculty struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"faculty_name" json:"faculty_name"`
	Dean  string `db:"faculty_dean" json:"faculty_dean"`
	Email string `db:"faculty_email" json:"faculty_email"`
}
