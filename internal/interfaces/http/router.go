package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-lite/internal/application/analytics"
	"github.com/jhoicas/inventario-lite/internal/application/auth"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	InvUC     *inventory.InventoryUseCase
	DashUC    *analytics.DashboardUseCase
	JWTSecret string
	Log       zerolog.Logger
}

// Router registra las rutas de la API. Todo el protocolo pasa por el
// dispatcher de acciones; la identidad se resuelve una vez por request.
func Router(app *fiber.App, deps RouterDeps) {
	handler := NewActionHandler(deps.AuthUC, deps.InvUC, deps.DashUC, deps.Log)

	api := app.Group("/api", IdentityMiddleware(deps.JWTSecret))
	api.Post("/action", handler.Dispatch)
}
