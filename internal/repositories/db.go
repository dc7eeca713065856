package repositories

import (
	"log"

	"github.com/aksuu-app/aksuu-server/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and runs migrations. The handle is returned to
// the caller instead of living in a package global so stores can be wired
// explicitly.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Event{},
		&models.Settings{},
	)
	if err != nil {
		return nil, err
	}
	log.Println("Successfully connected to database")
	return db, nil
}
