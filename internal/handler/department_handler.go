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

type departmentService interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Get(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	Find(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error)
	Update(ctx context.Context, department *models.Department, req dto.UpdateDepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

// DepartmentHandler exposes department endpoints.
type DepartmentHandler struct {
	departments departmentService
}

// NewDepartmentHandler constructs DepartmentHandler.
func NewDepartmentHandler(departments departmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

// List godoc
// @Summary List departments
// @Tags Departments
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, departments)
}

// Get godoc
// @Summary Get department with its courses
// @Tags Departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} response.MessageBody
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, appErrors.NotFound(err))
		return
	}
	department, err := h.departments.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, department)
}

// Create godoc
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Param payload body dto.CreateDepartmentRequest true "Department payload"
// @Success 200 {object} response.MessageBody
// @Failure 422 {object} response.MessageBody
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	department, err := h.departments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, department.ID))
}

// Update godoc
// @Summary Update department fields
// @Tags Departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param payload body dto.UpdateDepartmentRequest true "Fields to change"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.MessageBody
// @Failure 422 {object} response.MessageBody
// @Router /departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, appErrors.NotFound(err))
		return
	}
	current, err := h.departments.Find(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	if _, err := h.departments.Update(c.Request.Context(), current, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, response.MessageUpdated)
}

// Delete godoc
// @Summary Delete department with its courses
// @Tags Departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} response.MessageBody
// @Failure 500 {object} response.MessageBody
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, deleteFailure(err))
		return
	}
	if err := h.departments.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, deleteFailure(err))
		return
	}
	response.Message(c, http.StatusOK, response.MessageDeleted)
}
