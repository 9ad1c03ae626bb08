package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ecollege-api/internal/dto"
	"github.com/noah-isme/ecollege-api/internal/models"
	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
	"github.com/noah-isme/ecollege-api/pkg/validation"
)

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	FindByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

type departmentCourseLister interface {
	ListByDepartmentIDs(ctx context.Context, departmentIDs []int64) ([]models.Course, error)
}

// DepartmentService implements department workflows.
type DepartmentService struct {
	repo      departmentRepository
	faculties existenceChecker
	courses   departmentCourseLister
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(repo departmentRepository, faculties existenceChecker, courses departmentCourseLister, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *DepartmentService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, faculties: faculties, courses: courses, cache: cache, validator: validate, logger: logger}
}

// List returns every department with its courses embedded.
func (s *DepartmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	key := s.cache.Key(ctx, listKey("departments"))
	var cached []dto.DepartmentResponse
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, "list departments", err)
	}
	ids := make([]int64, len(departments))
	for i, d := range departments {
		ids[i] = d.ID
	}
	courses, err := s.courses.ListByDepartmentIDs(ctx, ids)
	if err != nil {
		return nil, storeFailure(s.logger, "list department courses", err)
	}

	byDepartment := make(map[int64][]models.Course, len(departments))
	for _, c := range courses {
		byDepartment[c.DepartmentID] = append(byDepartment[c.DepartmentID], c)
	}
	result := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		result = append(result, dto.NewDepartmentResponse(d, byDepartment[d.ID]))
	}

	s.cache.Set(ctx, key, result)
	return result, nil
}

// Get returns one department with its courses embedded.
func (s *DepartmentService) Get(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	key := s.cache.Key(ctx, viewKey("departments", id))
	var cached dto.DepartmentResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	department, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.ListByDepartmentIDs(ctx, []int64{id})
	if err != nil {
		return nil, storeFailure(s.logger, "list department courses", err)
	}

	view := dto.NewDepartmentResponse(*department, courses)
	s.cache.Set(ctx, key, view)
	return &view, nil
}

// Find loads the bare department row.
func (s *DepartmentService) Find(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, "load department", err)
	}
	return department, nil
}

// Create validates the payload, checks the owning faculty and inserts.
func (s *DepartmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(s.logger, "department", err)
	}
	if err := requireParent(ctx, s.logger, s.faculties, "faculty", req.FacultyID); err != nil {
		return nil, err
	}

	department := req.Model()
	if err := s.repo.Create(ctx, department); err != nil {
		return nil, storeFailure(s.logger, "create department", err)
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("department created", zap.Int64("department_id", department.ID), zap.Int64("faculty_id", department.FacultyID))
	return department, nil
}

// Update merges the supplied fields onto department and persists it.
func (s *DepartmentService) Update(ctx context.Context, department *models.Department, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	if req.Empty() {
		return nil, appErrors.Inoperable(errEmptyUpdate)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(s.logger, "department", err)
	}
	if req.FacultyID != nil && *req.FacultyID != department.FacultyID {
		if err := requireParent(ctx, s.logger, s.faculties, "faculty", *req.FacultyID); err != nil {
			return nil, err
		}
	}

	updated := *department
	req.Apply(&updated)
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, storeFailure(s.logger, "update department", err)
	}
	s.cache.InvalidateAll(ctx)
	return &updated, nil
}

// Delete removes a department and its courses.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(s.logger, "delete department", err)
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("department deleted", zap.Int64("department_id", id))
	return nil
}
