package main

import (
	"abrec/database"
	"abrec/docs"
	"abrec/internal/cache"
	"abrec/internal/controllers"
	"abrec/internal/repository"
	"abrec/routes"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load("../.env")
	if err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "ABREC API"
	docs.SwaggerInfo.Description = "Clinical records administration API: patients, users and spreadsheet export."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database and run migrations
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories. Redis is optional; without it the role
	// reference data is simply read from the database every time.
	patientRepo := repository.NewPatientRepository(database.DB)

	var userRepo repository.UserRepository
	if redisClient, err := cache.NewRedisClient(); err != nil {
		log.Printf("Redis unavailable, role cache disabled: %v", err)
		userRepo = repository.NewUserRepository(database.DB)
	} else {
		userRepo = repository.NewCachedUserRepository(database.DB, redisClient)
		log.Println("Role cache enabled via Redis")
	}

	// Initialize controllers
	patientController := controllers.NewPatientController(patientRepo)
	userController := controllers.NewUserController(userRepo)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "ABREC API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
		})
	})

	routes.RegisterPatientRoutes(router, patientController, userRepo)
	routes.RegisterUserRoutes(router, userController, userRepo)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("ABREC API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
