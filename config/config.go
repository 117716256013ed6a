package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/logger"
)

// ReadConfig reads the configuration from the YAML file and applies
// environment overrides on top. The process must not come up without a
// signing key, so a missing jwt_private_key is a hard error.
func ReadConfig(filePath string) (*entity.Config, error) {
	// Absent keys keep these defaults; the middleware toggles exist as a
	// test/bootstrap escape hatch and default to enforcing.
	config := entity.Config{
		Port:              "8080",
		BcryptCost:        10,
		AuthMiddlewareOn:  true,
		AdminMiddlewareOn: true,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.Error(err))
		return nil, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	applyEnvOverrides(&config)

	if config.JWTPrivateKey == "" {
		return nil, errors.New("FATAL ERROR: jwt_private_key is not defined")
	}
	if config.BcryptCost <= 0 {
		return nil, errors.New("FATAL ERROR: bcrypt_cost is not defined")
	}

	return &config, nil
}

// applyEnvOverrides lets deployment environments override file values.
// A .env file is honored when present, the same way the surrounding
// tooling expects, but its absence is not an error.
func applyEnvOverrides(config *entity.Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		config.Port = v
	}
	if v := os.Getenv("ENV"); v != "" {
		config.Env = v
	}
	if v := os.Getenv("JWT_PRIVATE_KEY"); v != "" {
		config.JWTPrivateKey = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		config.Database.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		config.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		config.Database.DBName = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		config.Database.Port = v
	}
	if v := os.Getenv("DB_DIALECT"); v != "" {
		config.Database.Dialect = v
	}
}
