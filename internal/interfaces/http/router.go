package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jeremytpk/storall/internal/application/auth"
	"github.com/Jeremytpk/storall/internal/application/cart"
	"github.com/Jeremytpk/storall/internal/application/receipt"
	"github.com/Jeremytpk/storall/internal/application/staff"
	"github.com/Jeremytpk/storall/internal/application/usecase"
	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	StaffUC   *staff.StaffUseCase
	StoreUC   *usecase.StoreUseCase
	ProductUC *usecase.ProductUseCase
	CartUC    *cart.CartUseCase
	OrderUC   *usecase.OrderUseCase
	ReceiptUC *receipt.ReceiptUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	clientOnly := RequireRole(entity.RoleClient)
	managerOnly := RequireRole(entity.RoleManager)
	pickerOnly := RequireRole(entity.RolePicker)

	// Auth (público + perfil protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Put("/profile", authRequired, authHandler.UpdateProfile)
	authGroup.Post("/staff/login", authHandler.StaffLogin)
	authGroup.Post("/staff/rotate", authHandler.RotatePasscode)

	// Stores (listado y detalle públicos; gestión solo admin)
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.StaffUC)
	stores.Get("/", OptionalAuth(deps.JWTSecret), storeHandler.List)
	stores.Post("/", authRequired, adminOnly, storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Get("/:id/staff", authRequired, adminOnly, storeHandler.ListStaff)
	stores.Post("/:id/staff", authRequired, adminOnly, storeHandler.AddStaff)
	stores.Put("/:id/staff/:pid", authRequired, adminOnly, storeHandler.RenameStaff)
	stores.Delete("/:id/staff/:pid", authRequired, adminOnly, storeHandler.RemoveStaff)
	stores.Post("/:id/staff/:pid/reset-passcode", authRequired, adminOnly, storeHandler.ResetStaffPasscode)

	// Products (catálogo público; publicación solo manager)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", authRequired, managerOnly, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)

	// Cart (cliente autenticado)
	cartGroup := api.Group("/cart", authRequired, clientOnly)
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Post("/session", cartHandler.StartBuying)
	cartGroup.Delete("/session/:clientId", cartHandler.CancelBuying)
	cartGroup.Post("/:clientId/lines", cartHandler.AddLine)
	cartGroup.Get("/:clientId", cartHandler.List)
	cartGroup.Delete("/:clientId/lines/:productId", cartHandler.RemoveLine)

	// Picking (picker autenticado)
	picking := api.Group("/picking", authRequired, pickerOnly)
	pickingHandler := NewPickingHandler(deps.CartUC)
	picking.Post("/:clientId/lines/:lineId/found", pickingHandler.MarkFound)
	picking.Delete("/:clientId/lines/:lineId/found", pickingHandler.UnmarkFound)
	picking.Post("/:clientId/confirm", pickingHandler.ConfirmAll)

	// Orders (manager; el comprobante también lo descarga el cliente dueño)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders := api.Group("/orders", authRequired)
	orders.Get("/", managerOnly, orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/confirm-payment", managerOnly, orderHandler.ConfirmPayment)
	orders.Get("/:id/receipt.pdf", orderHandler.DownloadReceipt)

	// Out of stock (reporta el picker, consulta el manager)
	oos := api.Group("/out-of-stock", authRequired)
	oos.Post("/", pickerOnly, orderHandler.ReportOutOfStock)
	oos.Get("/count", managerOnly, orderHandler.OutOfStockCount)
}
