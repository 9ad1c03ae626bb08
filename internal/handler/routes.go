package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ecollege-api/internal/middleware"
)

// CatalogueExportPath serves the catalogue download outside the JSON API group.
const CatalogueExportPath = "/ecollege/exports/catalogue"

// RouteOptions toggles optional surfaces.
type RouteOptions struct {
	APIPrefix     string
	EnableExports bool
}

// Handlers groups the endpoint handlers mounted by RegisterRoutes.
type Handlers struct {
	Faculties   *FacultyHandler
	Departments *DepartmentHandler
	Courses     *CourseHandler
	Catalogue   *CatalogueHandler
	Metrics     *MetricsHandler
}

// RegisterRoutes mounts the API under opts.APIPrefix. scoped runs for every
// API and export request, ahead of the handler.
func RegisterRoutes(r *gin.Engine, opts RouteOptions, h Handlers, scoped ...gin.HandlerFunc) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(opts.APIPrefix)
	api.Use(middleware.JSONContentType())
	api.Use(scoped...)

	if opts.APIPrefix != "" {
		api.GET("", Root)
	}
	api.GET("/", Root)

	faculties := api.Group("/faculties")
	{
		faculties.GET("", h.Faculties.List)
		faculties.GET("/:id", h.Faculties.Get)
		faculties.POST("", h.Faculties.Create)
		faculties.PUT("/:id", h.Faculties.Update)
		faculties.DELETE("/:id", h.Faculties.Delete)
	}

	departments := api.Group("/departments")
	{
		departments.GET("", h.Departments.List)
		departments.GET("/:id", h.Departments.Get)
		departments.POST("", h.Departments.Create)
		departments.PUT("/:id", h.Departments.Update)
		departments.DELETE("/:id", h.Departments.Delete)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", h.Courses.List)
		courses.GET("/:id", h.Courses.Get)
		courses.POST("", h.Courses.Create)
		courses.PUT("/:id", h.Courses.Update)
		courses.DELETE("/:id", h.Courses.Delete)
	}

	if opts.EnableExports && h.Catalogue != nil {
		exports := r.Group("", scoped...)
		exports.GET(CatalogueExportPath, h.Catalogue.Export)
	}

	r.NoRoute(middleware.JSONContentType(), NotFound)
}
