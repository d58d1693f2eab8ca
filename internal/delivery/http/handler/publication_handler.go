package handler

import (
	"errors"

	"beverage-kg/internal/delivery/http/middleware"
	"beverage-kg/internal/pkg/response"
	"beverage-kg/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PublicationHandler struct {
	uc usecase.PublishUsecase
}

func NewPublicationHandler(uc usecase.PublishUsecase) *PublicationHandler {
	return &PublicationHandler{uc: uc}
}

func (h *PublicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/publication", h.Status)
}

// Status compares the table loaded in this process with the last copy
// published to Postgres.
func (h *PublicationHandler) Status(c fiber.Ctx) error {
	st, err := h.uc.Status(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrDatabaseDisabled) {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "database not configured", st, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
