package handlers_fiber

import (
	"net/http"

	"barbershop-catalog/internal/mapper"
	"barbershop-catalog/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetTeam returns the team page for the state encoded in the query string.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	view, err := h.uc.Team(c.UserContext(), stateFromQuery(c, "role"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamView(view))
}

// PostTeamAction applies one interaction to the posted state.
func (h *Handler) PostTeamAction(c *fiber.Ctx) error {
	var body dto.ActionRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
	}

	view, err := h.uc.TeamAction(c.UserContext(), mapper.FromDTOState(body.State), mapper.FromDTOAction(body.Action))
	if err != nil {
		h.log.Infow("team action rejected", "action", body.Action.Type, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamView(view))
}

// GetTeamMember returns one team profile.
func (h *Handler) GetTeamMember(c *fiber.Ctx) error {
	m, err := h.uc.TeamMember(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamMember(*m))
}
