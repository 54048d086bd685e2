package routes

import (
	"abrec/internal/controllers"
	"abrec/internal/middleware"
	"abrec/internal/models"
	"abrec/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterPatientRoutes(router *gin.Engine, patientController *controllers.PatientController, userRepo repository.UserRepository) {
	patientRoutes := router.Group("/patients")
	patientRoutes.Use(middleware.AuthMiddleware())
	{
		patientRoutes.GET("/", patientController.Index)
		patientRoutes.GET("/create", patientController.Create)
		patientRoutes.POST("/", patientController.Store)
		patientRoutes.GET("/:id/edit", patientController.Edit)
		patientRoutes.PUT("/:id", patientController.Update)
		patientRoutes.DELETE("/:id", patientController.Destroy)
	}

	// Export is the one admin-restricted patient route
	adminRoutes := router.Group("/patients")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(userRepo, models.RoleAdmin))
	{
		adminRoutes.GET("/export", patientController.Export)
	}
}
