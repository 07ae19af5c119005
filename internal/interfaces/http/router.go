package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-venda-api/internal/application/auth"
	"github.com/tu-usuario/controle-venda-api/internal/application/currency"
	"github.com/tu-usuario/controle-venda-api/internal/application/inventory"
	"github.com/tu-usuario/controle-venda-api/internal/application/reports"
	"github.com/tu-usuario/controle-venda-api/internal/application/support"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *inventory.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	SummaryUC        *reports.SummaryUseCase
	CurrencyUC       *currency.ConvertUseCase
	SupportUC        *support.ContactUseCase
}

// Router registra las rutas de la API. Todo menos el canje de sesión exige
// una sesión activa.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/session", authHandler.CreateSession)
	authGroup.Get("/me", AuthMiddleware(deps.AuthUC), authHandler.Me)
	authGroup.Post("/logout", AuthMiddleware(deps.AuthUC), authHandler.Logout)

	// Rutas protegidas (cookie session_token o Bearer)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:code", productHandler.FindByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQuery)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.SummaryUC)
	reportsGroup.Get("/summary", reportHandler.Summary)
	reportsGroup.Get("/summary/pdf", reportHandler.SummaryPDF)

	// Currency (protegido)
	currencyGroup := protected.Group("/currency")
	currencyHandler := NewCurrencyHandler(deps.CurrencyUC)
	currencyGroup.Post("/convert", currencyHandler.Convert)
	currencyGroup.Get("/rates/:base", currencyHandler.Rates)

	// Pricing (protegido)
	pricingHandler := NewPricingHandler()
	protected.Post("/pricing/calculate", pricingHandler.Calculate)

	// Support (protegido)
	supportHandler := NewSupportHandler(deps.SupportUC)
	protected.Post("/support/contact", supportHandler.Contact)
}
