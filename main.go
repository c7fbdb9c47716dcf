// @title           CIC AGRI IMS API
// @version         1.0
// @description     Asset inventory management service with QR scan ingestion and role-based permissions

// @contact.name   API Support
// @contact.email  support@punura-itd.example

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
	"github.com/punura-itd/CIC-AGRI-IMS/routes"
	"github.com/punura-itd/CIC-AGRI-IMS/services"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	} else {
		config.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to drop and recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	port := serverPort(cfg)

	config.Info("server listening on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// serverPort resolves the listen port. A bare SERVER_PORT env var overrides
// the environment-prefixed config value.
func serverPort(cfg *config.Config) string {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		return port
	}
	return cfg.ServerPort
}

// initDB opens the database connection and configures the pool
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate adds new columns and tables, never drops
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Asset{},
		&models.Supplier{},
		&models.InsurancePolicy{},
		&models.ScanRecord{},
		&models.ScannerStation{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every table and recreates the schema
func dropAndRecreateTables(db *gorm.DB) error {
	log.Println("warning: dropping and recreating all tables, all data will be lost")

	db.Exec("SET FOREIGN_KEY_CHECKS = 0")
	defer db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	var tables []string
	err := db.Raw("SHOW TABLES").Scan(&tables).Error
	if err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}

	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)).Error
		if err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	log.Println("recreating all tables")
	return autoMigrate(db)
}

// ensureAdminExists seeds a superadmin account when the user table is empty
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	userService := services.NewUserService(db, cfg)
	if err := userService.EnsureDefaultAdmin(); err != nil {
		log.Printf("failed to seed default admin: %v", err)
	}
}
