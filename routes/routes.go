package routes

import (
	"munshiji/config"
	"munshiji/handlers"
	"munshiji/logger"
	"munshiji/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// NewApp builds the Fiber application with the middleware stack and every
// route registered.
func NewApp(cfg *config.Config, h *handlers.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		BodyLimit:    cfg.BodyLimit(),
		ErrorHandler: middleware.ErrorHandler,
		JSONEncoder:  jsonCodec.Marshal,
		JSONDecoder:  jsonCodec.Unmarshal,
	})

	metrics := middleware.NewHTTPMetrics(cfg.ServiceName)

	app.Use(middleware.RequestID())
	app.Use(logger.Middleware())
	app.Use(metrics.Middleware())
	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.CORS())
	app.Use(middleware.RateLimiter("/api", cfg.RateLimitMax, cfg.RateLimitWindow))

	app.Get("/metrics", metrics.Handler())
	SetupRoutes(app, h)

	app.Use(middleware.NotFound)
	return app
}

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.HandleHome)
	app.Get("/health", h.HandleHealth)

	api := app.Group("/api/v1")
	api.Get("/", h.HandleAPIIndex)

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/send-otp", h.HandleSendOTP)
	auth.Post("/verify-otp", h.HandleVerifyOTP)

	// --- Catalog ---
	products := api.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/:id", h.HandleGetProduct)
	products.Post("/", h.HandleCreateProduct)

	// --- Sales Ledger ---
	sales := api.Group("/sales")
	sales.Get("/", h.HandleListSales)
	sales.Get("/export", h.HandleExportSales)
	sales.Post("/", h.HandleCreateSale)

	api.Get("/customers", h.HandleListCustomers)

	// --- Reports ---
	reports := api.Group("/reports")
	reports.Get("/daily-sales", h.HandleDailySalesReport)
	reports.Get("/profit-analysis", h.HandleProfitAnalysis)
	reports.Get("/seasonal-insights", h.HandleSeasonalInsights)
}
