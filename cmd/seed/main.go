package main

import (
	"abrec/database"
	"abrec/internal/models"
	"abrec/internal/repository"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)
	adminName := adminCmd.String("name", "Administrador", "Admin display name")
	adminEmail := adminCmd.String("email", "", "Admin email (required)")
	adminPassword := adminCmd.String("password", "", "Admin password (required)")

	patientsCmd := flag.NewFlagSet("patients", flag.ExitOnError)
	patientCount := patientsCmd.Int("count", 10, "Number of demo patients to create")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "admin":
		adminCmd.Parse(os.Args[2:])
		if *adminEmail == "" || *adminPassword == "" {
			log.Fatal("Both -email and -password are required")
		}
		if err := seedAdmin(*adminName, *adminEmail, *adminPassword); err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
	case "patients":
		patientsCmd.Parse(os.Args[2:])
		if err := seedPatients(*patientCount); err != nil {
			log.Fatalf("Failed to seed patients: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func seedAdmin(name, email, password string) error {
	repo := repository.NewUserRepository(database.DB)

	if exists, err := repo.EmailExists(email, 0); err != nil {
		return err
	} else if exists {
		log.Printf("User %s already exists, skipping", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{Name: name, Email: email, Password: string(hash)}
	if err := repo.Create(&user, models.RoleAdmin); err != nil {
		return err
	}

	log.Printf("Created admin user %s (id %d)", email, user.ID)
	return nil
}

var demoNames = []string{
	"João da Silva", "Maria Oliveira", "Carlos Santos", "Ana Souza",
	"Pedro Almeida", "Lucia Ferreira", "Rafael Costa", "Beatriz Lima",
	"Fernando Pereira", "Juliana Rodrigues",
}

var demoCities = []string{"São Paulo", "Campinas", "Santos", "Sorocaba"}

func seedPatients(count int) error {
	repo := repository.NewPatientRepository(database.DB)

	created := 0
	for i := 0; i < count; i++ {
		weight := 60.0 + float64(i%40)
		height := 155 + i%40
		patient := models.Patient{
			Name:           demoNames[i%len(demoNames)],
			CPF:            fmt.Sprintf("%011d", 10000000000+i),
			DateOfBirth:    time.Date(1950+i%60, time.Month(1+i%12), 1+i%28, 0, 0, 0, 0, time.UTC),
			Gender:         []string{models.GenderMale, models.GenderFemale}[i%2],
			Address:        fmt.Sprintf("Rua das Flores, %d", 100+i),
			Neighborhood:   "Centro",
			City:           demoCities[i%len(demoCities)],
			Weight:         &weight,
			Height:         &height,
			IsDiabetic:     i%3 == 0,
			IsHypertensive: i%4 == 0,
			IsObese:        i%5 == 0,
		}
		if err := repo.Create(&patient); err != nil {
			return err
		}
		created++
	}

	log.Printf("Created %d demo patients", created)
	return nil
}

func printHelp() {
	fmt.Println("Usage: seed <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  admin     Create the initial admin user (-name, -email, -password)")
	fmt.Println("  patients  Create demo patients (-count)")
}
