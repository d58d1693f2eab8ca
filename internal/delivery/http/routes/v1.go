package routes

import (
	"beverage-kg/internal/delivery/http/handler"
	v1 "beverage-kg/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, synonyms *handler.SynonymHandler, resolve *handler.ResolveHandler, publication *handler.PublicationHandler) {
	if r == nil {
		return
	}

	v1.RegisterSynonyms(r, synonyms, publication)
	v1.RegisterResolve(r, resolve)
}
