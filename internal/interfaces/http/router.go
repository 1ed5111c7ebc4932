package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// MsgRoot respuesta de GET /.
const MsgRoot = "¡API de pedidos funcionando correctamente!"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	PedidoUC  *usecase.PedidoUseCase
	ResumenUC *usecase.ResumenUseCase
	ProductUC *usecase.ProductUseCase
	JWTSecret string
	// ProtectRoutes exige Bearer token en /pedidos, /resumenes y /productos.
	ProtectRoutes bool
}

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name           string
	AllowedOrigins []string
	Logger         *logger.Logger
	Metrics        *Metrics
}

// NewApp construye la app Fiber con middlewares, rutas de servicio y rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cfg.Metrics.Middleware())
	app.Use(RequestLogger(cfg.Logger))
	app.Use(CORS(cfg.AllowedOrigins))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"mensaje": MsgRoot})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	app.Get("/metrics", cfg.Metrics.Handler())

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	var guard []fiber.Handler
	if deps.ProtectRoutes {
		guard = append(guard, AuthMiddleware(deps.JWTSecret))
	}

	pedidos := app.Group("/pedidos", guard...)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/totales", pedidoHandler.Totals) // antes de /:id
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Patch("/:id", pedidoHandler.Patch)
	pedidos.Delete("/:id", pedidoHandler.Delete)

	resumenes := app.Group("/resumenes", guard...)
	resumenHandler := NewResumenHandler(deps.ResumenUC)
	resumenes.Get("/", resumenHandler.List)
	resumenes.Post("/", resumenHandler.Create)
	resumenes.Get("/:id", resumenHandler.GetByID)
	resumenes.Get("/:id/pdf", resumenHandler.PDF)
	resumenes.Put("/:id", resumenHandler.Update)
	resumenes.Delete("/:id", resumenHandler.Delete)

	productos := app.Group("/productos", guard...)
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Get("/:id", productHandler.GetByID)
	productos.Patch("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)
}
