package database

import (
	"log"

	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and runs migrations. TranslateError
// is on so unique-constraint violations surface as gorm.ErrDuplicatedKey and
// the services can tell "duplicate" apart from any other store failure.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}

// Migrate creates/updates the schema. Also used by the admin CLI.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Job{},
		&models.JobApplication{},
		&models.WorkedWith{},
		&models.Review{},
		&models.Bookmark{},
		&models.Notification{},
		&models.Task{},
	)
}
