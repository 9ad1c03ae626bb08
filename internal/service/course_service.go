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

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService implements course workflows.
type CourseService struct {
	repo        courseRepository
	departments existenceChecker
	cache       *CacheService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewCourseService creates a new course service.
func NewCourseService(repo courseRepository, departments existenceChecker, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, departments: departments, cache: cache, validator: validate, logger: logger}
}

// List returns every course.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	key := s.cache.Key(ctx, listKey("courses"))
	var cached []models.Course
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, "list courses", err)
	}
	s.cache.Set(ctx, key, courses)
	return courses, nil
}

// Get returns one course.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	key := s.cache.Key(ctx, viewKey("courses", id))
	var cached models.Course
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	course, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, course)
	return course, nil
}

// Find loads the course row.
func (s *CourseService) Find(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, "load course", err)
	}
	return course, nil
}

// Create validates the payload, checks the owning department and inserts.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(s.logger, "course", err)
	}
	if err := requireParent(ctx, s.logger, s.departments, "department", req.DepartmentID); err != nil {
		return nil, err
	}

	course := req.Model()
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, storeFailure(s.logger, "create course", err)
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("course created", zap.Int64("course_id", course.ID), zap.Int64("department_id", course.DepartmentID))
	return course, nil
}

// Update merges the supplied fields onto course and persists it.
func (s *CourseService) Update(ctx context.Context, course *models.Course, req dto.UpdateCourseRequest) (*models.Course, error) {
	if req.Empty() {
		return nil, appErrors.Inoperable(errEmptyUpdate)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(s.logger, "course", err)
	}
	if req.DepartmentID != nil && *req.DepartmentID != course.DepartmentID {
		if err := requireParent(ctx, s.logger, s.departments, "department", *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	updated := *course
	req.Apply(&updated)
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, storeFailure(s.logger, "update course", err)
	}
	s.cache.InvalidateAll(ctx)
	return &updated, nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(s.logger, "delete course", err)
	}
	s.cache.InvalidateAll(ctx)
	return nil
}
