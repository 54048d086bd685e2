package database

import (
	"log"

	"abrec/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Patient{},
		&models.User{},
		&models.Role{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	if err := SeedRoles(); err != nil {
		log.Printf("Error seeding roles: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedRoles ensures the two fixed roles exist for the web guard. Roles are
// reference data and are never created through the application itself.
func SeedRoles() error {
	for _, name := range []string{models.RoleAdmin, models.RoleUser} {
		role := models.Role{Name: name, GuardName: models.GuardWeb}
		err := DB.Where("name = ? AND guard_name = ?", name, models.GuardWeb).
			FirstOrCreate(&role).Error
		if err != nil {
			return err
		}
	}
	return nil
}
