package main

import (
	"log"
	"os"

	"faq-knowledge-be/internal/model"
	"faq-knowledge-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the initial reviewer account for the dashboard. Email and password
// come from SEED_REVIEWER_EMAIL / SEED_REVIEWER_PASSWORD.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	email := os.Getenv("SEED_REVIEWER_EMAIL")
	password := os.Getenv("SEED_REVIEWER_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("Error: SEED_REVIEWER_EMAIL and SEED_REVIEWER_PASSWORD must be set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Reviewer '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash password: %v", err)
	}

	user := model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Reviewer",
		Role:         "reviewer",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Error: Failed to create reviewer: %v", err)
	}

	color.Green("✅ Reviewer '%s' created (id %s)", email, user.Id)
}
