package server

import "github.com/formlens/formlens/internal/server/handlers"

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes() {
	s.router.Get("/health", handlers.HealthHandler)
	s.router.Get("/version", handlers.VersionHandler)

	s.router.Post("/v1/prompts", handlers.BuildPromptHandler)
	s.router.Post("/v1/images/encode", handlers.EncodeImagesHandler)
	s.router.Post("/v1/images/decode", handlers.DecodeImagesHandler)
	s.router.Post("/v1/reshape", handlers.ReshapeHandler)
}
