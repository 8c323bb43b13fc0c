package project

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
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.GET("", middleware.Authorize(authzService, authz.ResourceProject, authz.ActionRead), handler.GetAll)
		projects.GET("/:id", middleware.Authorize(authzService, authz.ResourceProject, authz.ActionRead), handler.GetById)
		projects.POST("", middleware.Authorize(authzService, authz.ResourceProject, authz.ActionCreate), handler.Create)
		projects.PUT("/:id", middleware.Authorize(authzService, authz.ResourceProject, authz.ActionUpdate), handler.Update)
		projects.DELETE("/:id", middleware.Authorize(authzService, authz.ResourceProject, authz.ActionDelete), handler.Delete)

		projects.GET("/:id/available-employees", middleware.Authorize(authzService, authz.ResourceProject, authz.ActionUpdate), handler.AvailableEmployees)
		projects.POST("/:id/assignments", middleware.Authorize(authzService, authz.ResourceProject, authz.ActionUpdate), handler.AssignEmployee)
		projects.DELETE("/:id/assignments/:employeeId", middleware.Authorize(authzService, authz.ResourceProject, authz.ActionUpdate), handler.RemoveEmployee)
	}
}
