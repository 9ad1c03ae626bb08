package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
	"github.com/noah-isme/ecollege-api/pkg/response"
)

// Greeting is the fixed body served at the API root.
const Greeting = "This is the official e-College API"

// Root godoc
// @Summary API greeting
// @Tags Meta
// @Produce json
// @Success 200 {string} string
// @Router / [get]
func Root(c *gin.Context) {
	response.Raw(c, http.StatusOK, Greeting)
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	response.Error(c, appErrors.ErrNotFound)
}
