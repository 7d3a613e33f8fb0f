package main

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fitstudio_backend/internals/configs"
	agentController "fitstudio_backend/internals/features/agents/controller"
	"fitstudio_backend/internals/features/agents/reasoner"
	agentService "fitstudio_backend/internals/features/agents/service"
	"fitstudio_backend/internals/features/agents/tools"
	analyticsController "fitstudio_backend/internals/features/analytics/controller"
	analyticsRepository "fitstudio_backend/internals/features/analytics/repository"
	analyticsService "fitstudio_backend/internals/features/analytics/service"
	orderController "fitstudio_backend/internals/features/finance/orders/controller"
	orderRepository "fitstudio_backend/internals/features/finance/orders/repository"
	orderService "fitstudio_backend/internals/features/finance/orders/service"
	paymentController "fitstudio_backend/internals/features/finance/payments/controller"
	paymentRepository "fitstudio_backend/internals/features/finance/payments/repository"
	paymentService "fitstudio_backend/internals/features/finance/payments/service"
	notifyService "fitstudio_backend/internals/features/notifications/service"
	attendanceController "fitstudio_backend/internals/features/studio/attendance/controller"
	attendanceRepository "fitstudio_backend/internals/features/studio/attendance/repository"
	attendanceService "fitstudio_backend/internals/features/studio/attendance/service"
	classController "fitstudio_backend/internals/features/studio/classes/controller"
	classRepository "fitstudio_backend/internals/features/studio/classes/repository"
	classService "fitstudio_backend/internals/features/studio/classes/service"
	clientController "fitstudio_backend/internals/features/studio/clients/controller"
	clientRepository "fitstudio_backend/internals/features/studio/clients/repository"
	clientService "fitstudio_backend/internals/features/studio/clients/service"
	courseController "fitstudio_backend/internals/features/studio/courses/controller"
	courseRepository "fitstudio_backend/internals/features/studio/courses/repository"
	courseService "fitstudio_backend/internals/features/studio/courses/service"
	enquiryController "fitstudio_backend/internals/features/studio/enquiries/controller"
	enquiryRepository "fitstudio_backend/internals/features/studio/enquiries/repository"
	enquiryService "fitstudio_backend/internals/features/studio/enquiries/service"
	authController "fitstudio_backend/internals/features/users/auth/controller"
	authRepository "fitstudio_backend/internals/features/users/auth/repository"
	authService "fitstudio_backend/internals/features/users/auth/service"
)

/* =========================================================
   Studio: clients, courses, classes, attendance, enquiries
========================================================= */

var studioModule = fx.Module("studio",
	fx.Provide(
		clientRepository.NewClientRepository,
		courseRepository.NewCourseRepository,
		classRepository.NewClassRepository,
		attendanceRepository.NewAttendanceRepository,
		enquiryRepository.NewEnquiryRepository,

		newClientService,
		newCourseService,
		newClassService,
		newAttendanceService,
		newEnquiryService,

		clientController.NewClientController,
		courseController.NewCourseController,
		classController.NewClassController,
		attendanceController.NewAttendanceController,
		enquiryController.NewEnquiryController,
	),
)

func newClientService(repo *clientRepository.ClientRepository, orders *orderRepository.OrderRepository, payments *paymentRepository.PaymentRepository, log *zap.Logger) *clientService.Service {
	return clientService.New(repo, orders, payments, log)
}

func newCourseService(repo *courseRepository.CourseRepository, log *zap.Logger) *courseService.Service {
	return courseService.New(repo, log)
}

func newClassService(repo *classRepository.ClassRepository, courses *courseRepository.CourseRepository, log *zap.Logger) *classService.Service {
	return classService.New(repo, courses, log)
}

func newAttendanceService(repo *attendanceRepository.AttendanceRepository, clients *clientRepository.ClientRepository, classes *classRepository.ClassRepository, log *zap.Logger) *attendanceService.Service {
	return attendanceService.New(repo, clients, classes, log)
}

func newEnquiryService(repo *enquiryRepository.EnquiryRepository, notifier *notifyService.Notifier, log *zap.Logger) *enquiryService.Service {
	return enquiryService.New(repo, notifier, log)
}

/* =========================================================
   Finance: orders, payments, gateway
========================================================= */

var financeModule = fx.Module("finance",
	fx.Provide(
		orderRepository.NewOrderRepository,
		paymentRepository.NewPaymentRepository,

		newOrderService,
		newPaymentGateway,
		newPaymentService,

		orderController.NewOrderController,
		paymentController.NewPaymentController,
	),
)

func newOrderService(repo *orderRepository.OrderRepository, clients *clientRepository.ClientRepository, courses *courseRepository.CourseRepository, log *zap.Logger) *orderService.Service {
	return orderService.New(repo, clients, courses, log)
}

// newPaymentGateway uses Midtrans when a server key is configured and the
// settle-immediately mock otherwise.
func newPaymentGateway(cfg *configs.Config, log *zap.Logger) paymentService.Gateway {
	if cfg.Payment.MidtransServerKey != "" {
		log.Info("payment gateway: midtrans", zap.Bool("production", cfg.Payment.MidtransUseProd))
		return paymentService.NewMidtransGateway(cfg.Payment.MidtransServerKey, cfg.Payment.MidtransUseProd)
	}
	log.Info("payment gateway: mock")
	return paymentService.NewMockGateway()
}

func newPaymentService(repo *paymentRepository.PaymentRepository, orders *orderService.Service, clients *clientRepository.ClientRepository, gateway paymentService.Gateway, log *zap.Logger) *paymentService.Service {
	return paymentService.New(repo, orders, clients, gateway, log)
}

/* =========================================================
   Analytics + agents
========================================================= */

var insightModule = fx.Module("insight",
	fx.Provide(
		analyticsRepository.NewAnalyticsRepository,
		newAnalyticsService,
		analyticsController.NewAnalyticsController,

		newReasoner,
		newStudioDataTool,
		newExternalAPITool,
		newAgentService,
		newAgentController,
	),
)

func newAnalyticsService(repo *analyticsRepository.AnalyticsRepository, log *zap.Logger) *analyticsService.Service {
	return analyticsService.New(repo, log)
}

func newReasoner(cfg *configs.Config, log *zap.Logger) reasoner.Reasoner {
	return reasoner.New(cfg.Agent, log)
}

func newStudioDataTool(clients *clientService.Service, orders *orderService.Service, payments *paymentService.Service, reports *analyticsService.Service, log *zap.Logger) *tools.StudioData {
	return tools.NewStudioData(clients, orders, payments, reports, log)
}

func newExternalAPITool(
	clients *clientService.Service,
	courses *courseService.Service,
	orders *orderService.Service,
	enquiries *enquiryService.Service,
	payments *paymentService.Service,
	notifier *notifyService.Notifier,
	log *zap.Logger,
) *tools.ExternalAPI {
	return tools.NewExternalAPI(tools.ExternalAPIDeps{
		Clients:   clients,
		Courses:   courses,
		Orders:    orders,
		Enquiries: enquiries,
		Payments:  payments,
		Messenger: notifier,
	}, log)
}

func newAgentService(r reasoner.Reasoner, studioData *tools.StudioData, externalAPI *tools.ExternalAPI, log *zap.Logger) *agentService.Service {
	return agentService.New(r, studioData, externalAPI, log)
}

func newAgentController(svc *agentService.Service, cfg *configs.Config) *agentController.AgentController {
	return agentController.NewAgentController(svc, cfg.Agent.MaxQueryLength)
}

/* =========================================================
   Staff auth + notifications
========================================================= */

var accessModule = fx.Module("access",
	fx.Provide(
		newNotifier,
		newTokenService,
		authRepository.NewStaffRepository,
		newAuthService,
		authController.NewAuthController,
	),
)

func newNotifier(cfg *configs.Config, log *zap.Logger) *notifyService.Notifier {
	return notifyService.New(cfg.Notify.StaffEmail, log)
}

func newTokenService(cfg *configs.Config) *authService.TokenService {
	return authService.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func newAuthService(repo *authRepository.StaffRepository, tokens *authService.TokenService, log *zap.Logger) *authService.Service {
	return authService.New(repo, tokens, log)
}
