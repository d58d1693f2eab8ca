package handler

import (
	"errors"

	"beverage-kg/internal/pkg/response"
	"beverage-kg/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResolveHandler struct {
	uc usecase.ResolveUsecase
}

type resolveRequest struct {
	Query string `json:"query"`
}

func NewResolveHandler(uc usecase.ResolveUsecase) *ResolveHandler {
	return &ResolveHandler{uc: uc}
}

func (h *ResolveHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/resolve")
	grp.Get("/", h.ResolveQuery)
	grp.Post("/", h.ResolveBody)
}

func (h *ResolveHandler) ResolveQuery(c fiber.Ctx) error {
	return h.resolve(c, c.Query("q"))
}

func (h *ResolveHandler) ResolveBody(c fiber.Ctx) error {
	var req resolveRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	return h.resolve(c, req.Query)
}

func (h *ResolveHandler) resolve(c fiber.Ctx, query string) error {
	res, err := h.uc.Resolve(c.Context(), query)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
