package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ecollege-api/internal/service"
	"github.com/noah-isme/ecollege-api/pkg/response"
)

type catalogueService interface {
	Export(ctx context.Context, format string) (*service.CatalogueDocument, error)
}

// CatalogueHandler serves the flattened catalogue as a download.
type CatalogueHandler struct {
	catalogue catalogueService
}

// NewCatalogueHandler constructs CatalogueHandler.
func NewCatalogueHandler(catalogue catalogueService) *CatalogueHandler {
	return &CatalogueHandler{catalogue: catalogue}
}

// Export godoc
// @Summary Download the faculty, department and course catalogue
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 422 {object} response.MessageBody
// @Router /exports/catalogue [get]
func (h *CatalogueHandler) Export(c *gin.Context) {
	doc, err := h.catalogue.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
