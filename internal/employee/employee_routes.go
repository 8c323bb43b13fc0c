package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(authzService, authz.ResourceEmployee, authz.ActionRead), handler.List)
		employees.GET("/positions", middleware.Authorize(authzService, authz.ResourceEmployee, authz.ActionRead), handler.PositionOptions)
		employees.GET("/:id", middleware.Authorize(authzService, authz.ResourceEmployee, authz.ActionRead), handler.GetById)
		employees.POST("", middleware.Authorize(authzService, authz.ResourceEmployee, authz.ActionCreate), handler.Create)
		employees.PUT("/:id", middleware.Authorize(authzService, authz.ResourceEmployee, authz.ActionUpdate), handler.Update)
		employees.DELETE("/:id", middleware.Authorize(authzService, authz.ResourceEmployee, authz.ActionDelete), handler.Delete)
	}
}
