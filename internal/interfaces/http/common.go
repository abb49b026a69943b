package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// noStore desactiva cualquier caché de respuesta. Cada lectura del panel debe
// observar el estado actual del store; evitar lecturas obsoletas es un
// requisito de corrección, no una optimización.
func noStore(c *fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, "no-store")
}

// internalError responde 500 con mensaje genérico. El detalle del fallo ya
// quedó en el log del servidor; nunca viaja al cliente.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}
