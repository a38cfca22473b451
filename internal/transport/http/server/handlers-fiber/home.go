package handlers_fiber

import (
	"net/http"

	"barbershop-catalog/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetHome returns pricing, services and highlights.
func (h *Handler) GetHome(c *fiber.Ctx) error {
	home, err := h.uc.Home(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to get home", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOHome(home))
}
