package profile

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
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", middleware.Authorize(authzService, authz.ResourceProfile, authz.ActionRead), handler.Get)
		profile.PUT("", middleware.Authorize(authzService, authz.ResourceProfile, authz.ActionUpdate), handler.Update)
	}
}
