// Package server exposes the schedule engine over HTTP.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timetabler/internal/catalog"
	"timetabler/internal/model"
)

// Server wires the catalog and the generator behind the JSON API consumed by
// the web UI.
type Server struct {
	catalog    *catalog.Catalog
	generator  model.Generator
	maxResults int
	engine     *gin.Engine
}

// New builds a Server over an already-loaded catalog. maxResults caps each
// generation run; mode is a gin mode ("debug", "release" or "test").
func New(cat *catalog.Catalog, maxResults int, mode string) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}

	server := &Server{
		catalog:    cat,
		generator:  model.NewGenerator(cat.Offerings),
		maxResults: maxResults,
		engine:     gin.Default(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/courses/:batch", s.handleCourses)
	api.GET("/courses-with-sections/:batch", s.handleCoursesWithSections)
	api.GET("/instructors/:batch", s.handleInstructors)
	api.POST("/generate", s.handleGenerate)
}

// Run blocks serving on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
