package handlers_fiber

import (
	"errors"
	"net/http"
	"strings"

	"barbershop-catalog/internal/catalog"
	"barbershop-catalog/internal/entities"
	"barbershop-catalog/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrGalleryItemNotFound), errors.Is(err, entities.ErrTeamMemberNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrInvalidState):
		status = http.StatusConflict
		code = dto.INVALIDSTATE
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}

// stateFromQuery reads page state from ?q=&<listKey>=&selected=&filters=hidden.
// A selected id opens the dialog.
func stateFromQuery(c *fiber.Ctx, listKey string) catalog.State {
	s := catalog.NewState()
	s.Query = c.Query("q")
	for _, v := range c.Context().QueryArgs().PeekMulti(listKey) {
		s.Active = append(s.Active, string(v))
	}
	if id := strings.TrimSpace(c.Query("selected")); id != "" {
		s = s.OpenDialog(id)
	}
	if c.Query("filters") == "hidden" {
		s.FiltersVisible = false
	}
	return s
}
