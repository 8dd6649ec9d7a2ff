package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/routes/auth"
)

// SetupFeesRoutes sets up all fees-related routes
func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)
	api.Get("/next-voucher", NextVoucherAPI)
	api.Get("/:id/account", GetFeeAccountAPI)
	api.Post("/:id/collect", CollectPaymentAPI)
	api.Get("/:id/transactions", GetTransactionsAPI)
}
