package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitstudio_backend/internals/configs"
	agentController "fitstudio_backend/internals/features/agents/controller"
	analyticsController "fitstudio_backend/internals/features/analytics/controller"
	orderController "fitstudio_backend/internals/features/finance/orders/controller"
	paymentController "fitstudio_backend/internals/features/finance/payments/controller"
	attendanceController "fitstudio_backend/internals/features/studio/attendance/controller"
	classController "fitstudio_backend/internals/features/studio/classes/controller"
	clientController "fitstudio_backend/internals/features/studio/clients/controller"
	courseController "fitstudio_backend/internals/features/studio/courses/controller"
	enquiryController "fitstudio_backend/internals/features/studio/enquiries/controller"
	authController "fitstudio_backend/internals/features/users/auth/controller"
	authService "fitstudio_backend/internals/features/users/auth/service"
	authMiddleware "fitstudio_backend/internals/middlewares/auth"
	routeDetails "fitstudio_backend/internals/route/details"
)

var startTime time.Time

// Deps is everything the route tree needs, filled in by fx.
type Deps struct {
	fx.In

	Config *configs.Config
	DB     *gorm.DB
	Log    *zap.Logger
	Tokens *authService.TokenService

	Auth       *authController.AuthController
	Clients    *clientController.ClientController
	Courses    *courseController.CourseController
	Classes    *classController.ClassController
	Attendance *attendanceController.AttendanceController
	Enquiries  *enquiryController.EnquiryController
	Orders     *orderController.OrderController
	Payments   *paymentController.PaymentController
	Analytics  *analyticsController.AnalyticsController
	Agents     *agentController.AgentController
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	log := d.Log.Named("routes")

	BaseRoutes(app, d.DB, d.Config.Environment)

	api := app.Group("/api")
	if d.Config.Auth.Required {
		log.Info("staff authentication required on /api")
		api.Use(authMiddleware.Skip(authMiddleware.Authenticate(d.Tokens, true, d.Log), "/api/auth"))
	}

	log.Info("mounting auth routes")
	routeDetails.AuthRoutes(api, d.Auth, d.Tokens, d.Log)

	log.Info("mounting studio routes")
	routeDetails.StudioRoutes(api, routeDetails.StudioControllers{
		Clients:    d.Clients,
		Courses:    d.Courses,
		Classes:    d.Classes,
		Attendance: d.Attendance,
		Enquiries:  d.Enquiries,
	})

	log.Info("mounting finance routes")
	routeDetails.FinanceRoutes(api, d.Orders, d.Payments)

	log.Info("mounting analytics and agent routes")
	routeDetails.InsightRoutes(api, d.Analytics, d.Agents)
}
