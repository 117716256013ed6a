package entity

type Config struct {
	Port              string         `yaml:"port"`
	Env               string         `yaml:"env"`
	Database          DatabaseConfig `yaml:"database"`
	JWTPrivateKey     string         `yaml:"jwt_private_key"`
	TokenTTLMinutes   int            `yaml:"token_ttl_minutes"`
	BcryptCost        int            `yaml:"bcrypt_cost"`
	AuthMiddlewareOn  bool           `yaml:"auth_middleware_on"`
	AdminMiddlewareOn bool           `yaml:"admin_middleware_on"`
}

type DatabaseConfig struct {
	Dialect  string `yaml:"dialect"` // "postgres" or "sqlite"
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
	Storage  string `yaml:"storage"` // sqlite file path
}
