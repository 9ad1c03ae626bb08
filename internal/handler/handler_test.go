package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ecollege-api/internal/dto"
	"github.com/noah-isme/ecollege-api/internal/models"
	"github.com/noah-isme/ecollege-api/internal/service"
	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
)

const prefix = "/ecollege/api/v1"

type fakeFaculties struct {
	rows        map[int64]models.Faculty
	departments []models.Department
	lastUpdate  *dto.UpdateFacultyRequest
	deleted     []int64
	err         error
}

func (f *fakeFaculties) List(context.Context) ([]dto.FacultyResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []dto.FacultyResponse{}
	for _, row := range f.rows {
		out = append(out, dto.NewFacultyResponse(row, f.departments))
	}
	return out, nil
}

func (f *fakeFaculties) Get(ctx context.Context, id int64) (*dto.FacultyResponse, error) {
	row, err := f.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	view := dto.NewFacultyResponse(*row, f.departments)
	return &view, nil
}

func (f *fakeFaculties) Find(_ context.Context, id int64) (*models.Faculty, error) {
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, appErrors.NotFound(sql.ErrNoRows)
	}
	return &row, nil
}

func (f *fakeFaculties) Create(_ context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.Inoperable(errors.New("faculty_name"))
	}
	row := req.Model()
	row.ID = 7
	return row, nil
}

func (f *fakeFaculties) Update(_ context.Context, row *models.Faculty, req dto.UpdateFacultyRequest) (*models.Faculty, error) {
	f.lastUpdate = &req
	if req.Empty() {
		return nil, appErrors.Inoperable(errors.New("empty"))
	}
	updated := *row
	req.Apply(&updated)
	f.rows[updated.ID] = updated
	return &updated, nil
}

func (f *fakeFaculties) Delete(ctx context.Context, id int64) error {
	if _, err := f.Find(ctx, id); err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDepartments struct {
	rows       map[int64]models.Department
	courses    []models.Course
	lastCreate *dto.CreateDepartmentRequest
	lastUpdate *dto.UpdateDepartmentRequest
	deleted    []int64
}

func (f *fakeDepartments) List(context.Context) ([]dto.DepartmentResponse, error) {
	out := []dto.DepartmentResponse{}
	for _, row := range f.rows {
		out = append(out, dto.NewDepartmentResponse(row, f.coursesOf(row.ID)))
	}
	return out, nil
}

func (f *fakeDepartments) coursesOf(id int64) []models.Course {
	var out []models.Course
	for _, c := range f.courses {
		if c.DepartmentID == id {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeDepartments) Get(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	row, err := f.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	view := dto.NewDepartmentResponse(*row, f.coursesOf(id))
	return &view, nil
}

func (f *fakeDepartments) Find(_ context.Context, id int64) (*models.Department, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, appErrors.NotFound(sql.ErrNoRows)
	}
	return &row, nil
}

func (f *fakeDepartments) Create(_ context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	f.lastCreate = &req
	row := req.Model()
	row.ID = 8
	f.rows[row.ID] = *row
	return row, nil
}

func (f *fakeDepartments) Update(_ context.Context, row *models.Department, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	f.lastUpdate = &req
	if req.Empty() {
		return nil, appErrors.Inoperable(errors.New("empty"))
	}
	updated := *row
	req.Apply(&updated)
	f.rows[updated.ID] = updated
	return &updated, nil
}

func (f *fakeDepartments) Delete(ctx context.Context, id int64) error {
	if _, err := f.Find(ctx, id); err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCourses struct {
	rows       map[int64]models.Course
	lastCreate *dto.CreateCourseRequest
	lastUpdate *dto.UpdateCourseRequest
	deleted    []int64
}

func (f *fakeCourses) List(context.Context) ([]models.Course, error) {
	out := []models.Course{}
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeCourses) Get(ctx context.Context, id int64) (*models.Course, error) {
	return f.Find(ctx, id)
}

func (f *fakeCourses) Find(_ context.Context, id int64) (*models.Course, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, appErrors.NotFound(sql.ErrNoRows)
	}
	return &row, nil
}

func (f *fakeCourses) Create(_ context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	f.lastCreate = &req
	row := req.Model()
	row.ID = 9
	f.rows[row.ID] = *row
	return row, nil
}

func (f *fakeCourses) Update(_ context.Context, row *models.Course, req dto.UpdateCourseRequest) (*models.Course, error) {
	f.lastUpdate = &req
	if req.Empty() {
		return nil, appErrors.Inoperable(errors.New("empty"))
	}
	updated := *row
	req.Apply(&updated)
	f.rows[updated.ID] = updated
	return &updated, nil
}

func (f *fakeCourses) Delete(ctx context.Context, id int64) error {
	if _, err := f.Find(ctx, id); err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCatalogue struct{}

func (fakeCatalogue) Export(_ context.Context, format string) (*service.CatalogueDocument, error) {
	if format == "xlsx" {
		return nil, appErrors.Inoperable(errors.New("unsupported"))
	}
	return &service.CatalogueDocument{Filename: "catalogue.csv", ContentType: "text/csv; charset=utf-8", Body: []byte("faculty\nLaw\n")}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func lawFaculties() *fakeFaculties {
	return &fakeFaculties{
		rows:        map[int64]models.Faculty{1: {ID: 1, Name: "Law", Dean: "A", Email: "a@x.com"}},
		departments: []models.Department{{ID: 4, Name: "Corporate Law", Head: "B", Email: "b@x.com", FacultyID: 1}},
	}
}

func languagesDepartments() *fakeDepartments {
	return &fakeDepartments{
		rows: map[int64]models.Department{
			3: {ID: 3, Name: "Languages", Head: "Knox Astor", Email: "languages@ecollege.com", FacultyID: 4},
			5: {ID: 5, Name: "History", Head: "Ida Vale", Email: "history@ecollege.com", FacultyID: 4},
		},
		courses: []models.Course{{ID: 2, Name: "French", Adviser: "Rylie Phillip", Duration: "4 Semesters", DepartmentID: 3}},
	}
}

func pharmacyCourses() *fakeCourses {
	return &fakeCourses{rows: map[int64]models.Course{
		2: {ID: 2, Name: "Pharmacy", Adviser: "Rylie Phillip", Duration: "10 Semesters", DepartmentID: 4},
	}}
}

type testServices struct {
	faculties   *fakeFaculties
	departments *fakeDepartments
	courses     *fakeCourses
}

func newFakeServices() testServices {
	return testServices{faculties: lawFaculties(), departments: languagesDepartments(), courses: pharmacyCourses()}
}

func newTestRouter(faculties *fakeFaculties, store Pinger) *gin.Engine {
	svc := newFakeServices()
	svc.faculties = faculties
	return newRouterWith(svc, store)
}

func newRouterWith(svc testServices, store Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, RouteOptions{APIPrefix: prefix, EnableExports: true}, Handlers{
		Faculties:   NewFacultyHandler(svc.faculties),
		Departments: NewDepartmentHandler(svc.departments),
		Courses:     NewCourseHandler(svc.courses),
		Catalogue:   NewCatalogueHandler(fakeCatalogue{}),
		Metrics:     NewMetricsHandler(service.NewMetricsService(), store, nil),
	})
	return r
}

func perform(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRootGreeting(t *testing.T) {
	r := newTestRouter(lawFaculties(), nil)
	for _, target := range []string{prefix, prefix + "/"} {
		rec := perform(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, Greeting, rec.Body.String())
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	}
}

func TestGetFacultyEmbedsFlatDepartments(t *testing.T) {
	r := newTestRouter(lawFaculties(), nil)
	rec := perform(r, http.MethodGet, prefix+"/faculties/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 1, "faculty_name": "Law", "faculty_dean": "A", "faculty_email": "a@x.com",
		"departments": [{"id": 4, "dept_name": "Corporate Law", "dept_head": "B", "dept_email": "b@x.com", "faculty_id": 1}]
	}`, rec.Body.String())
}

func TestGetMissingOrMalformedID(t *testing.T) {
	r := newTestRouter(lawFaculties(), nil)
	for _, target := range []string{prefix + "/faculties/999", prefix + "/faculties/abc"} {
		rec := perform(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.JSONEq(t, `{"message":"Resource Not Found"}`, rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(lawFaculties(), nil)
	rec := perform(r, http.MethodGet, prefix+"/students", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Resource Not Found"}`, rec.Body.String())
}

func TestCreateFaculty(t *testing.T) {
	r := newTestRouter(lawFaculties(), nil)
	rec := perform(r, http.MethodPost, prefix+"/faculties", `{"faculty_name":"Arts","faculty_dean":"D","faculty_email":"d@x.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Resource Successfully Created"}`, rec.Body.String())
	assert.Equal(t, prefix+"/faculties/7", rec.Header().Get("Location"))
}

func TestCreateRejectsUnparseableBody(t *testing.T) {
	r := newTestRouter(lawFaculties(), nil)
	for _, body := range []string{"", "not json", `["a"]`, `{"faculty_name":"   "}`} {
		rec := perform(r, http.MethodPost, prefix+"/faculties", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
		assert.JSONEq(t, `{"message":"Inoperable Request"}`, rec.Body.String())
	}
}

func TestUpdateFacultyPartial(t *testing.T) {
	faculties := lawFaculties()
	r := newTestRouter(faculties, nil)
	rec := perform(r, http.MethodPut, prefix+"/faculties/1", `{"faculty_dean":"Z"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Resource Updated"}`, rec.Body.String())
	assert.Equal(t, models.Faculty{ID: 1, Name: "Law", Dean: "Z", Email: "a@x.com"}, faculties.rows[1])
}

func TestUpdateFacultyFailures(t *testing.T) {
	faculties := lawFaculties()
	r := newTestRouter(faculties, nil)

	rec := perform(r, http.MethodPut, prefix+"/faculties/999", `{"faculty_dean":"Z"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = perform(r, http.MethodPut, prefix+"/faculties/1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Nil(t, faculties.lastUpdate)

	rec = perform(r, http.MethodPut, prefix+"/faculties/1", `{"unknown":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "A", faculties.rows[1].Dean)
}

func TestDeleteFaculty(t *testing.T) {
	faculties := lawFaculties()
	r := newTestRouter(faculties, nil)

	rec := perform(r, http.MethodDelete, prefix+"/faculties/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Resource Deleted"}`, rec.Body.String())
	assert.Equal(t, []int64{1}, faculties.deleted)
}

func TestDeleteMissingIsServerError(t *testing.T) {
	r := newTestRouter(lawFaculties(), nil)
	for _, target := range []string{prefix + "/faculties/999", prefix + "/courses/30", prefix + "/departments/x"} {
		rec := perform(r, http.MethodDelete, target, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, target)
		assert.JSONEq(t, `{"message":"Server Error"}`, rec.Body.String())
	}
}

func TestStoreFailureIsServerError(t *testing.T) {
	faculties := lawFaculties()
	faculties.err = appErrors.Server(errors.New("connection refused"))
	r := newTestRouter(faculties, nil)

	rec := perform(r, http.MethodGet, prefix+"/faculties", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Server Error"}`, rec.Body.String())
}

func TestEmptyCollectionsEncodeAsArrays(t *testing.T) {
	svc := newFakeServices()
	svc.courses.rows = map[int64]models.Course{}
	r := newRouterWith(svc, nil)
	rec := perform(r, http.MethodGet, prefix+"/courses", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCatalogueExport(t *testing.T) {
	r := newTestRouter(lawFaculties(), nil)

	rec := perform(r, http.MethodGet, CatalogueExportPath+"?format=csv", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "catalogue.csv")
	assert.Contains(t, rec.Body.String(), "Law")

	rec = perform(r, http.MethodGet, CatalogueExportPath+"?format=xlsx", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHealthAndReady(t *testing.T) {
	r := newTestRouter(lawFaculties(), fakePinger{})
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/ready", "").Code)

	r = newTestRouter(lawFaculties(), fakePinger{err: errors.New("down")})
	assert.Equal(t, http.StatusServiceUnavailable, perform(r, http.MethodGet, "/ready", "").Code)

	rec := perform(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
