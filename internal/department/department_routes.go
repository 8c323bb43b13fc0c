package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", middleware.Authorize(authzService, authz.ResourceDepartment, authz.ActionRead), handler.GetAll)
		departments.GET("/:id", middleware.Authorize(authzService, authz.ResourceDepartment, authz.ActionRead), handler.GetById)
		departments.POST("", middleware.Authorize(authzService, authz.ResourceDepartment, authz.ActionCreate), handler.Create)
		departments.PUT("/:id", middleware.Authorize(authzService, authz.ResourceDepartment, authz.ActionUpdate), handler.Update)
		departments.DELETE("/:id", middleware.Authorize(authzService, authz.ResourceDepartment, authz.ActionDelete), handler.Delete)
	}
}
