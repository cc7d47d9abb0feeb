package database

import (
	"fmt"
	"log"

	"github.com/nyamari/meatpos-api/internal/config"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/enum"
	"github.com/nyamari/meatpos-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database. SQLite is the default for
// single-terminal shop deployments; PostgreSQL is selectable via DB_DRIVER.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var db *gorm.DB
	var err error

	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), gormCfg)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Printf("Connected to %s database", driverName(cfg.Driver))
	return db, nil
}

func driverName(driver string) string {
	if driver == "" {
		return "sqlite"
	}
	return driver
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.StoreSettings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// defaultUsers are the accounts seeded on first start. Passwords are
// placeholders for a real identity provider and should be rotated by the
// admin on first login.
var defaultUsers = []struct {
	username string
	password string
	role     enum.Role
}{
	{"admin", "admin123", enum.RoleAdmin},
	{"manager", "manager123", enum.RoleManager},
	{"cashier", "cashier123", enum.RoleCashier},
}

// SeedDefaultUsers creates the default admin/manager/cashier accounts if
// they do not exist yet. Safe to call on every start.
func SeedDefaultUsers(db *gorm.DB) error {
	for _, u := range defaultUsers {
		var existing entity.User
		err := db.Where("username = ?", u.username).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hashed, err := utils.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		user := entity.User{
			Username: u.username,
			Password: hashed,
			Role:     u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
		log.Printf("Seeded default user %q with role %s", u.username, u.role)
	}
	return nil
}
