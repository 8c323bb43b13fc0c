package report

import (
	"github.com/Slawuu/Company-manager/internal/authz"
	"github.com/Slawuu/Company-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authzService authz.Service,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.Authorize(authzService, authz.ResourceReport, authz.ActionRead))
	{
		reports.GET("/employees-by-department", handler.EmployeesByDepartment)
		reports.GET("/hired", handler.HiredInPeriod)
		reports.GET("/projects", handler.ProjectsSummary)
		reports.GET("/leave-requests", handler.LeaveRequestsSummary)
	}
}
