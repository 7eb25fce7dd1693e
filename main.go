package main

import (
	"os"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/routes"
	"autoshop-backend/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.CarService{},
		&models.CarServiceItem{},
		&models.Supply{},
		&models.Expense{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		reminders := services.NewPaymentReminderService(config.DB)
		reminders.StartScheduler()
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
