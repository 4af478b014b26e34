package router

import (
	"leave_manager/handler"
	"leave_manager/middleware"
	"leave_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", middleware.Protected(), handler.Logout)

	employee := v1.Group("/employee", logger.New())
	employee.Get("/", middleware.Protected(), handler.GetEmployees)
	employee.Get("/me", middleware.Protected(), handler.Me)
	employee.Get("/:employeeId", middleware.Protected(), validate.GetById("employeeId"), handler.GetEmployeeById)
	employee.Post("/", middleware.Protected(), validate.CreateEmployee(), handler.CreateEmployee)
	employee.Put("/:employeeId", middleware.Protected(), validate.UpdateEmployee("employeeId"), handler.UpdateEmployee)
	employee.Patch("/:employeeId/probation", middleware.Protected(), validate.Probation("employeeId"), handler.UpdateProbation)
	employee.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteEmployee)

	policy := v1.Group("/policy", logger.New())
	policy.Get("/", middleware.Protected(), handler.GetPolicies)
	policy.Post("/", middleware.Protected(), validate.CreatePolicy(), handler.CreatePolicy)
	policy.Put("/:policyId", middleware.Protected(), validate.UpdatePolicy("policyId"), handler.UpdatePolicy)
	policy.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePolicy)

	leave := v1.Group("/leave", logger.New())
	leave.Get("/", middleware.Protected(), handler.GetMyLeaves)
	leave.Get("/balance", middleware.Protected(), handler.GetMyBalance)
	leave.Get("/balance/:employeeId", middleware.Protected(), validate.GetById("employeeId"), handler.GetBalanceByEmployee)
	leave.Get("/pending", middleware.Protected(), handler.GetPendingLeaves)
	leave.Post("/validate", middleware.Protected(), validate.CreateLeave(), handler.ValidateLeave)
	leave.Post("/", middleware.Protected(), validate.CreateLeave(), handler.CreateLeave)
	leave.Patch("/:leaveId/approve", middleware.Protected(), validate.GetById("leaveId"), handler.ApproveLeave)
	leave.Patch("/:leaveId/reject", middleware.Protected(), validate.GetById("leaveId"), handler.RejectLeave)
	leave.Post("/:leaveId/attachment", middleware.Protected(), validate.GetById("leaveId"), handler.UploadAttachment)
	leave.Delete("/:leaveId", middleware.Protected(), validate.GetById("leaveId"), handler.CancelLeave)

	holidays := v1.Group("/holidays", logger.New())
	holidays.Get("/", middleware.Protected(), handler.GetHolidays)
	holidays.Post("/", middleware.Protected(), validate.CreateHoliday(), handler.CreateHoliday)
	holidays.Put("/:holidayId", middleware.Protected(), validate.UpdateHoliday("holidayId"), handler.UpdateHoliday)
	holidays.Delete("/:id", middleware.Protected(), handler.DeleteHoliday)

	team := v1.Group("/team", logger.New())
	team.Get("/", middleware.Protected(), handler.GetTeam)
	team.Get("/on-leave", middleware.Protected(), handler.GetTeamOnLeave)

	workspace := v1.Group("/workspace", logger.New())
	workspace.Get("/", middleware.Protected(), handler.GetWorkspaces)
	workspace.Get("/:workspaceId", middleware.Protected(), validate.GetById("workspaceId"), handler.GetWorkspaceById)
	workspace.Post("/", middleware.Protected(), validate.CreateWorkspace(), handler.CreateWorkspace)
	workspace.Put("/:workspaceId", middleware.Protected(), validate.UpdateWorkspace("workspaceId"), handler.UpdateWorkspace)
	workspace.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteWorkspace)

	invoice := v1.Group("/invoice", logger.New())
	invoice.Get("/", middleware.Protected(), handler.GetInvoices)
	invoice.Post("/generate", middleware.Protected(), validate.GenerateInvoice(), handler.GenerateInvoices)
	invoice.Get("/:invoiceId/qr", middleware.Protected(), validate.GetById("invoiceId"), handler.InvoiceQR)
	invoice.Patch("/:invoiceId/pay", middleware.Protected(), validate.GetById("invoiceId"), handler.PayInvoice)

	notification := v1.Group("/notification", logger.New())
	notification.Get("/", middleware.Protected(), handler.GetNotifications)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/notifications/:employeeId", websocket.New(handler.NotificationStream))
}
