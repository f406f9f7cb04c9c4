// One-shot schema initialization, run before first start:
//
//	go run ./cmd/createdb
package main

import (
	"log"

	"receipttrack-backend/config"
	"receipttrack-backend/models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Receipt{},
		&models.Appointment{},
		&models.ReminderLog{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Database tables created!")
}
