package details

import (
	"github.com/gofiber/fiber/v2"

	orderController "fitstudio_backend/internals/features/finance/orders/controller"
	orderRoute "fitstudio_backend/internals/features/finance/orders/route"
	paymentController "fitstudio_backend/internals/features/finance/payments/controller"
	paymentRoute "fitstudio_backend/internals/features/finance/payments/route"
)

func FinanceRoutes(r fiber.Router, orders *orderController.OrderController, payments *paymentController.PaymentController) {
	orderRoute.OrderRoutes(r, orders)
	paymentRoute.PaymentRoutes(r, payments)
}
