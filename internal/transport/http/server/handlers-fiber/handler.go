// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"barbershop-catalog/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the catalog API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// RegisterHandlers mounts every API route on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	v1 := router.Group("/api/v1")

	v1.Get("/home", h.GetHome)

	v1.Get("/gallery", h.GetGallery)
	v1.Post("/gallery/actions", h.PostGalleryAction)
	v1.Get("/gallery/items/:id", h.GetGalleryItem)

	v1.Get("/team", h.GetTeam)
	v1.Post("/team/actions", h.PostTeamAction)
	v1.Get("/team/members/:id", h.GetTeamMember)
}
