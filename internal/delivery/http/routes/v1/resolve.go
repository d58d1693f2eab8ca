package v1

import (
	"beverage-kg/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterResolve(r fiber.Router, resolveHandler *handler.ResolveHandler) {
	if r == nil {
		return
	}
	if resolveHandler == nil {
		return
	}

	resolveHandler.RegisterRoutes(r)
}
