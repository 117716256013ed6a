package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/logger"
	"github.com/will4skill/diet-api/model"
)

// Open connects to the configured database and returns the handle. The
// handle is injected into repositories; there is no package-level
// singleton. TranslateError is on so that uniqueness and foreign-key
// violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
// regardless of the driver.
func Open(c *entity.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.Database.Dialect {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Database.Host, c.Database.User, c.Database.Password,
			c.Database.DBName, c.Database.Port, c.Database.SSLMode)
		dialector = postgres.Open(dsn)
	case "sqlite":
		// _fk=1 turns on foreign-key enforcement, which the cascade
		// delete on meals depends on.
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_fk=1", c.Database.Storage))
	default:
		return nil, fmt.Errorf("unsupported database dialect: %q", c.Database.Dialect)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}

	logger.Info("database connection established", zap.String("dialect", c.Database.Dialect))
	return gormDB, nil
}

// Migrate creates or updates the tables for all models.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Diet{},
		&model.Ingredient{},
		&model.User{},
		&model.Meal{},
		&model.MealIngredient{},
	)
}

// Close releases the underlying connection pool.
func Close(gormDB *gorm.DB) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Error("failed to retrieve sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing the database connection", zap.Error(err))
	}
}
