package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/analytics"
	"github.com/tu-usuario/projectflow/internal/application/auth"
	"github.com/tu-usuario/projectflow/internal/application/billing"
	"github.com/tu-usuario/projectflow/internal/application/usecase"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	UserUC          *usecase.UserUseCase
	ProjectUC       *usecase.ProjectUseCase
	TaskUC          *usecase.TaskUseCase
	SkillUC         *usecase.SkillUseCase
	SalesOrderUC    *billing.SalesOrderUseCase
	PurchaseOrderUC *billing.PurchaseOrderUseCase
	InvoiceUC       *billing.InvoiceUseCase
	VendorBillUC    *billing.VendorBillUseCase
	ExpenseUC       *billing.ExpenseUseCase
	AnalyticsUC     *analytics.SummaryUseCase
	UserRepo        repository.UserRepository
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.UserRepo), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	// Users (protegido; listado solo admin/PM, alta solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(entity.RoleAdmin, entity.RoleProjectManager), userHandler.List)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Projects (protegido; visibilidad por rol dentro del caso de uso)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create)
	projects.Get("/:id", projectHandler.Get)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)

	// Tasks y registros de horas (protegido)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/:id", taskHandler.Get)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
	tasks.Post("/:id/timesheets", taskHandler.AddTimesheet)
	tasks.Get("/:id/timesheets", taskHandler.ListTimesheets)

	// Skills (protegido)
	skills := protected.Group("/skills")
	skillHandler := NewSkillHandler(deps.SkillUC)
	skills.Get("/all", skillHandler.ListAll)
	skills.Get("/suggestions", skillHandler.Suggest)
	skills.Get("/users/:id", skillHandler.ListByUser)
	skills.Post("/users/:id", skillHandler.Add)
	skills.Delete("/users/:id/:skillId", skillHandler.Remove)

	// Sales orders (protegido, financiero)
	salesOrders := protected.Group("/sales-orders")
	salesOrderHandler := NewSalesOrderHandler(deps.SalesOrderUC)
	salesOrders.Get("/", salesOrderHandler.List)
	salesOrders.Post("/", salesOrderHandler.Create)
	salesOrders.Get("/:id", salesOrderHandler.Get)
	salesOrders.Put("/:id", salesOrderHandler.Update)
	salesOrders.Delete("/:id", salesOrderHandler.Delete)

	// Purchase orders (protegido, financiero)
	purchaseOrders := protected.Group("/purchase-orders")
	purchaseOrderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	purchaseOrders.Get("/", purchaseOrderHandler.List)
	purchaseOrders.Post("/", purchaseOrderHandler.Create)
	purchaseOrders.Get("/:id", purchaseOrderHandler.Get)
	purchaseOrders.Put("/:id", purchaseOrderHandler.Update)
	purchaseOrders.Delete("/:id", purchaseOrderHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Vendor bills (protegido, financiero)
	vendorBills := protected.Group("/vendor-bills")
	vendorBillHandler := NewVendorBillHandler(deps.VendorBillUC)
	vendorBills.Get("/", vendorBillHandler.List)
	vendorBills.Post("/", vendorBillHandler.Create)
	vendorBills.Get("/:id", vendorBillHandler.Get)
	vendorBills.Put("/:id", vendorBillHandler.Update)
	vendorBills.Delete("/:id", vendorBillHandler.Delete)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/:id", expenseHandler.Get)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Analytics (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/project/:id/summary", analyticsHandler.ProjectSummary)
}
