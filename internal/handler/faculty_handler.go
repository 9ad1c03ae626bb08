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

type facultyService interface {
	List(ctx context.Context) ([]dto.FacultyResponse, error)
	Get(ctx context.Context, id int64) (*dto.FacultyResponse, error)
	Find(ctx context.Context, id int64) (*models.Faculty, error)
	Create(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error)
	Update(ctx context.Context, faculty *models.Faculty, req dto.UpdateFacultyRequest) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
}

// FacultyHandler exposes faculty endpoints.
type FacultyHandler struct {
	faculties facultyService
}

// NewFacultyHandler constructs FacultyHandler.
func NewFacultyHandler(faculties facultyService) *FacultyHandler {
	return &FacultyHandler{faculties: faculties}
}

// List godoc
// @Summary List faculties
// @Tags Faculties
// @Produce json
// @Success 200 {array} dto.FacultyResponse
// @Router /faculties [get]
func (h *FacultyHandler) List(c *gin.Context) {
	faculties, err := h.faculties.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, faculties)
}

// Get godoc
// @Summary Get faculty with its departments
// @Tags Faculties
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.FacultyResponse
// @Failure 404 {object} response.MessageBody
// @Router /faculties/{id} [get]
func (h *FacultyHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, appErrors.NotFound(err))
		return
	}
	faculty, err := h.faculties.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, faculty)
}

// Create godoc
// @Summary Create faculty
// @Tags Faculties
// @Accept json
// @Produce json
// @Param payload body dto.CreateFacultyRequest true "Faculty payload"
// @Success 200 {object} response.MessageBody
// @Failure 422 {object} response.MessageBody
// @Router /faculties [post]
func (h *FacultyHandler) Create(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	faculty, err := h.faculties.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, faculty.ID))
}

// Update godoc
// @Summary Update faculty fields
// @Tags Faculties
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Param payload body dto.UpdateFacultyRequest true "Fields to change"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.MessageBody
// @Failure 422 {object} response.MessageBody
// @Router /faculties/{id} [put]
func (h *FacultyHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, appErrors.NotFound(err))
		return
	}
	current, err := h.faculties.Find(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	if _, err := h.faculties.Update(c.Request.Context(), current, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, response.MessageUpdated)
}

// Delete godoc
// @Summary Delete faculty with its departments and courses
// @Tags Faculties
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} response.MessageBody
// @Failure 500 {object} response.MessageBody
// @Router /faculties/{id} [delete]
func (h *FacultyHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, deleteFailure(err))
		return
	}
	if err := h.faculties.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, deleteFailure(err))
		return
	}
	response.Message(c, http.StatusOK, response.MessageDeleted)
}
