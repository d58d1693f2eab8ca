package handler

import (
	"errors"
	"net/url"

	"beverage-kg/internal/pkg/response"
	"beverage-kg/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SynonymHandler struct {
	uc usecase.SynonymUsecase
}

func NewSynonymHandler(uc usecase.SynonymUsecase) *SynonymHandler {
	return &SynonymHandler{uc: uc}
}

func (h *SynonymHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/synonyms")
	grp.Get("/", h.List)
	grp.Get("/collisions", h.Collisions)
	grp.Get("/stats", h.Stats)
	grp.Get("/:term", h.Get)
}

// List returns the whole table, optionally filtered by ?kind=.
func (h *SynonymHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Query("kind"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, "unknown kind", nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SynonymHandler) Get(c fiber.Ctx) error {
	term, err := url.PathUnescape(c.Params("term"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	item, err := h.uc.Get(term)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTermNotFound):
			return response.Error(c, fiber.StatusNotFound, "term not found", nil)
		case errors.Is(err, usecase.ErrInvalidInput):
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *SynonymHandler) Collisions(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Collisions())
}

func (h *SynonymHandler) Stats(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Stats())
}
