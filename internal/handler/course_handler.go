package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ecollege-api/internal/dto"
	"github.com/noah-isme/ecollege-api/internal/models"
	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
	"github.com/noah-isme/ecollege-api/pkg/response"
)

type courseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Find(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, course *models.Course, req dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses courseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses courseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} response.MessageBody
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, appErrors.NotFound(err))
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CreateCourseRequest true "Course payload"
// @Success 200 {object} response.MessageBody
// @Failure 422 {object} response.MessageBody
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, course.ID))
}

// Update godoc
// @Summary Update course fields
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.MessageBody
// @Failure 422 {object} response.MessageBody
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, appErrors.NotFound(err))
		return
	}
	current, err := h.courses.Find(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	if _, err := h.courses.Update(c.Request.Context(), current, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, response.MessageUpdated)
}

// Delete godoc
// @Summary Delete course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.MessageBody
// @Failure 500 {object} response.MessageBody
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, deleteFailure(err))
		return
	}
	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, deleteFailure(err))
		return
	}
	response.Message(c, http.StatusOK, response.MessageDeleted)
}
