package service

import (
	"context"
	"database/sql"
	"sort"

	"github.com/noah-isme/ecollege-api/internal/models"
)

// memStore is an in-memory stand-in for the three repositories.
type memStore struct {
	faculties   map[int64]models.Faculty
	departments map[int64]models.Department
	courses     map[int64]models.Course
	nextID      int64
	err         error
	// afterFacultyList runs once, after List has copied the rows out.
	afterFacultyList func()
}

func newMemStore() *memStore {
	return &memStore{
		faculties:   map[int64]models.Faculty{},
		departments: map[int64]models.Department{},
		courses:     map[int64]models.Course{},
		nextID:      100,
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func sortedKeys[T any](items map[int64]T) []int64 {
	keys := make([]int64, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type memFaculties struct{ *memStore }

func (r memFaculties) List(ctx context.Context) ([]models.Faculty, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Faculty{}
	for _, id := range sortedKeys(r.faculties) {
		out = append(out, r.faculties[id])
	}
	if hook := r.afterFacultyList; hook != nil {
		r.afterFacultyList = nil
		hook()
	}
	return out, nil
}

func (r memFaculties) FindByID(ctx context.Context, id int64) (*models.Faculty, error) {
	f, ok := r.faculties[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &f, nil
}

func (r memFaculties) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.faculties[id]
	return ok, r.err
}

func (r memFaculties) Create(ctx context.Context, f *models.Faculty) error {
	f.ID = r.id()
	r.faculties[f.ID] = *f
	return nil
}

func (r memFaculties) Update(ctx context.Context, f *models.Faculty) error {
	if _, ok := r.faculties[f.ID]; !ok {
		return sql.ErrNoRows
	}
	r.faculties[f.ID] = *f
	return nil
}

func (r memFaculties) Delete(ctx context.Context, id int64) error {
	for did, d := range r.departments {
		if d.FacultyID == id {
			_ = memDepartments{r.memStore}.Delete(ctx, did)
		}
	}
	delete(r.faculties, id)
	return nil
}

type memDepartments struct{ *memStore }

func (r memDepartments) List(ctx context.Context) ([]models.Department, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Department{}
	for _, id := range sortedKeys(r.departments) {
		out = append(out, r.departments[id])
	}
	return out, nil
}

func (r memDepartments) ListByFacultyIDs(ctx context.Context, ids []int64) ([]models.Department, error) {
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []models.Department{}
	for _, id := range sortedKeys(r.departments) {
		if d := r.departments[id]; want[d.FacultyID] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r memDepartments) FindByID(ctx context.Context, id int64) (*models.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &d, nil
}

func (r memDepartments) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.departments[id]
	return ok, nil
}

func (r memDepartments) Create(ctx context.Context, d *models.Department) error {
	d.ID = r.id()
	r.departments[d.ID] = *d
	return nil
}

func (r memDepartments) Update(ctx context.Context, d *models.Department) error {
	r.departments[d.ID] = *d
	return nil
}

func (r memDepartments) Delete(ctx context.Context, id int64) error {
	for cid, c := range r.courses {
		if c.DepartmentID == id {
			delete(r.courses, cid)
		}
	}
	delete(r.departments, id)
	return nil
}

type memCourses struct{ *memStore }

func (r memCourses) List(ctx context.Context) ([]models.Course, error) {
	out := []models.Course{}
	for _, id := range sortedKeys(r.courses) {
		out = append(out, r.courses[id])
	}
	return out, nil
}

func (r memCourses) ListByDepartmentIDs(ctx context.Context, ids []int64) ([]models.Course, error) {
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []models.Course{}
	for _, id := range sortedKeys(r.courses) {
		if c := r.courses[id]; want[c.DepartmentID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCourses) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (r memCourses) Create(ctx context.Context, c *models.Course) error {
	c.ID = r.id()
	r.courses[c.ID] = *c
	return nil
}

func (r memCourses) Update(ctx context.Context, c *models.Course) error {
	r.courses[c.ID] = *c
	return nil
}

func (r memCourses) Delete(ctx context.Context, id int64) error {
	delete(r.courses, id)
	return nil
}

type services struct {
	store       *memStore
	faculties   *FacultyService
	departments *DepartmentService
	courses     *CourseService
}

func newServices(cache *CacheService) services {
	store := newMemStore()
	f, d, c := memFaculties{store}, memDepartments{store}, memCourses{store}
	return services{
		store:       store,
		faculties:   NewFacultyService(f, d, cache, nil, nil),
		departments: NewDepartmentService(d, f, c, cache, nil, nil),
		courses:     NewCourseService(c, d, cache, nil, nil),
	}
}
