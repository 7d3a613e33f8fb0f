package details

import (
	"github.com/gofiber/fiber/v2"

	attendanceController "fitstudio_backend/internals/features/studio/attendance/controller"
	attendanceRoute "fitstudio_backend/internals/features/studio/attendance/route"
	classController "fitstudio_backend/internals/features/studio/classes/controller"
	classRoute "fitstudio_backend/internals/features/studio/classes/route"
	clientController "fitstudio_backend/internals/features/studio/clients/controller"
	clientRoute "fitstudio_backend/internals/features/studio/clients/route"
	courseController "fitstudio_backend/internals/features/studio/courses/controller"
	courseRoute "fitstudio_backend/internals/features/studio/courses/route"
	enquiryController "fitstudio_backend/internals/features/studio/enquiries/controller"
	enquiryRoute "fitstudio_backend/internals/features/studio/enquiries/route"
)

type StudioControllers struct {
	Clients    *clientController.ClientController
	Courses    *courseController.CourseController
	Classes    *classController.ClassController
	Attendance *attendanceController.AttendanceController
	Enquiries  *enquiryController.EnquiryController
}

func StudioRoutes(r fiber.Router, h StudioControllers) {
	clientRoute.ClientRoutes(r, h.Clients)
	courseRoute.CourseRoutes(r, h.Courses)
	classRoute.ClassRoutes(r, h.Classes)
	attendanceRoute.AttendanceRoutes(r, h.Attendance)
	enquiryRoute.EnquiryRoutes(r, h.Enquiries)
}
