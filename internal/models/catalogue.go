package models

// CatalogueEntry is one row of the flattened faculty/department/course
// listing. Department and course columns are nil for childless parents.
type CatalogueEntry struct {
	FacultyName    string  `db:"faculty_name"`
	FacultyDean    string  `db:"faculty_dean"`
	DepartmentName *string `db:"dept_name"`
	DepartmentHead *string `db:"dept_head"`
	CourseName     *string `db:"course_name"`
	CourseAdviser  *string `db:"course_adviser"`
	CourseDuration *string `db:"course_duration"`
}
