package database

import (
	"log"
	"os"
	"time"

	"github.com/franpopo/EasyStock/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the store and syncs the schema.
//
// By default the store is a local sqlite file (DB_FILE, falling back to
// easystock.db next to the binary) so a single shop needs zero setup.
// Setting DB_DSN switches to MySQL for installs where several branch
// terminals share one server.
func Connect() {
	dsn := os.Getenv("DB_DSN")

	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Unique-index violations come back as gorm.ErrDuplicatedKey
		// on both drivers, which inventory.go maps to ErrDuplicateBarcode.
		TranslateError: true,
	}

	var err error
	if dsn != "" {
		// Wait for MySQL to be ready
		for i := 0; i < 5; i++ {
			DB, err = gorm.Open(mysql.Open(dsn), cfg)
			if err == nil {
				break
			}
			log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			log.Fatal("Failed to connect to database after 5 attempts:", err)
		}
		log.Println("Connected to MySQL")
	} else {
		file := os.Getenv("DB_FILE")
		if file == "" {
			file = "easystock.db"
		}
		DB, err = gorm.Open(sqlite.Open(file), cfg)
		if err != nil {
			log.Fatal("Failed to open sqlite database:", err)
		}
		log.Println("Opened sqlite database at " + file)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}
	log.Println("Database schema synced")
}

// Migrate syncs the schema on the given connection. Split out of Connect
// so tests can run it against their own in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.Product{},
		&models.Sale{},
		&models.SaleLineItem{},
	)
}
