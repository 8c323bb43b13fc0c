package leave

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
	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", middleware.Authorize(authzService, authz.ResourceLeave, authz.ActionRead), handler.List)
		leaves.GET("/:id", middleware.Authorize(authzService, authz.ResourceLeave, authz.ActionRead), handler.GetById)
		leaves.POST("", middleware.Authorize(authzService, authz.ResourceLeave, authz.ActionCreate), handler.Submit)
		leaves.POST("/:id/approve", middleware.Authorize(authzService, authz.ResourceLeave, authz.ActionDecide), handler.Approve)
		leaves.POST("/:id/reject", middleware.Authorize(authzService, authz.ResourceLeave, authz.ActionDecide), handler.Reject)
		leaves.DELETE("/:id", middleware.Authorize(authzService, authz.ResourceLeave, authz.ActionDelete), handler.Delete)
	}
}
