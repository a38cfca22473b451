package handlers_fiber

import (
	"net/http"

	"barbershop-catalog/internal/mapper"
	"barbershop-catalog/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetGallery returns the gallery page for the state encoded in the query string.
func (h *Handler) GetGallery(c *fiber.Ctx) error {
	view, err := h.uc.Gallery(c.UserContext(), stateFromQuery(c, "tag"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOGalleryView(view))
}

// PostGalleryAction applies one interaction to the posted state.
func (h *Handler) PostGalleryAction(c *fiber.Ctx) error {
	var body dto.ActionRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
	}

	view, err := h.uc.GalleryAction(c.UserContext(), mapper.FromDTOState(body.State), mapper.FromDTOAction(body.Action))
	if err != nil {
		h.log.Infow("gallery action rejected", "action", body.Action.Type, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOGalleryView(view))
}

// GetGalleryItem returns one gallery item.
func (h *Handler) GetGalleryItem(c *fiber.Ctx) error {
	it, err := h.uc.GalleryItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOGalleryItem(*it))
}
