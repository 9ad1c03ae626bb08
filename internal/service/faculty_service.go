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

type facultyRepository interface {
	List(ctx context.Context) ([]models.Faculty, error)
	FindByID(ctx context.Context, id int64) (*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

type facultyDepartmentLister interface {
	ListByFacultyIDs(ctx context.Context, facultyIDs []int64) ([]models.Department, error)
}

// FacultyService implements faculty workflows.
type FacultyService struct {
	repo        facultyRepository
	departments facultyDepartmentLister
	cache       *CacheService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewFacultyService creates a new faculty service.
func NewFacultyService(repo facultyRepository, departments facultyDepartmentLister, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *FacultyService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyService{repo: repo, departments: departments, cache: cache, validator: validate, logger: logger}
}

// List returns every faculty with its departments embedded.
func (s *FacultyService) List(ctx context.Context) ([]dto.FacultyResponse, error) {
	key := s.cache.Key(ctx, listKey("faculties"))
	var cached []dto.FacultyResponse
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	faculties, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, "list faculties", err)
	}
	ids := make([]int64, len(faculties))
	for i, f := range faculties {
		ids[i] = f.ID
	}
	departments, err := s.departments.ListByFacultyIDs(ctx, ids)
	if err != nil {
		return nil, storeFailure(s.logger, "list faculty departments", err)
	}

	byFaculty := make(map[int64][]models.Department, len(faculties))
	for _, d := range departments {
		byFaculty[d.FacultyID] = append(byFaculty[d.FacultyID], d)
	}
	result := make([]dto.FacultyResponse, 0, len(faculties))
	for _, f := range faculties {
		result = append(result, dto.NewFacultyResponse(f, byFaculty[f.ID]))
	}

	s.cache.Set(ctx, key, result)
	return result, nil
}

// Get returns one faculty with its departments embedded.
func (s *FacultyService) Get(ctx context.Context, id int64) (*dto.FacultyResponse, error) {
	key := s.cache.Key(ctx, viewKey("faculties", id))
	var cached dto.FacultyResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	faculty, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.ListByFacultyIDs(ctx, []int64{id})
	if err != nil {
		return nil, storeFailure(s.logger, "list faculty departments", err)
	}

	view := dto.NewFacultyResponse(*faculty, departments)
	s.cache.Set(ctx, key, view)
	return &view, nil
}

// Find loads the bare faculty row.
func (s *FacultyService) Find(ctx context.Context, id int64) (*models.Faculty, error) {
	faculty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, "load faculty", err)
	}
	return faculty, nil
}

// Create validates and inserts a faculty.
func (s *FacultyService) Create(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(s.logger, "faculty", err)
	}

	faculty := req.Model()
	if err := s.repo.Create(ctx, faculty); err != nil {
		return nil, storeFailure(s.logger, "create faculty", err)
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("faculty created", zap.Int64("faculty_id", faculty.ID))
	return faculty, nil
}

// Update merges the supplied fields onto faculty and persists it.
func (s *FacultyService) Update(ctx context.Context, faculty *models.Faculty, req dto.UpdateFacultyRequest) (*models.Faculty, error) {
	if req.Empty() {
		return nil, appErrors.Inoperable(errEmptyUpdate)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(s.logger, "faculty", err)
	}

	updated := *faculty
	req.Apply(&updated)
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, storeFailure(s.logger, "update faculty", err)
	}
	s.cache.InvalidateAll(ctx)
	return &updated, nil
}

// Delete removes a faculty and, transitively, its departments and courses.
func (s *FacultyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(s.logger, "delete faculty", err)
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("faculty deleted", zap.Int64("faculty_id", id))
	return nil
}
