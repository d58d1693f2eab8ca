package v1

import (
	"beverage-kg/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterSynonyms(r fiber.Router, synonymHandler *handler.SynonymHandler, publicationHandler *handler.PublicationHandler) {
	if r == nil {
		return
	}
	if synonymHandler == nil {
		return
	}

	synonymHandler.RegisterRoutes(r)
	if publicationHandler != nil {
		publicationHandler.RegisterRoutes(r)
	}
}
