package initializers

import (
	"log"

	"github.com/lakshmi-store/lakshmi-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.UserRole{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.LeaseAgreement{},
		&models.LeasePayment{},
	)
	log.Println("Database synced successfully.")
}
