package routes

import (
	"abrec/internal/controllers"
	"abrec/internal/middleware"
	"abrec/internal/models"
	"abrec/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController, userRepo repository.UserRepository) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/login", userController.Login)
	}

	// User management is admin only
	userRoutesAdmin := router.Group("/users")
	userRoutesAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRole(userRepo, models.RoleAdmin))
	{
		userRoutesAdmin.GET("/", userController.Index)
		userRoutesAdmin.GET("/create", userController.Create)
		userRoutesAdmin.GET("/roles", userController.Roles)
		userRoutesAdmin.POST("/", userController.Store)
		userRoutesAdmin.GET("/:id/edit", userController.Edit)
		userRoutesAdmin.PUT("/:id", userController.Update)
		userRoutesAdmin.DELETE("/:id", userController.Destroy)
	}
}
