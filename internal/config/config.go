package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	PageSize        int           `envconfig:"SERVER_PAGE_SIZE" default:"10"`
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	S3       S3Config
	Auth     AuthConfig
}

type DatabaseConfig struct {
	Host     string `envconfig:"DATABASE_HOST" required:"true"`
	Port     int    `envconfig:"DATABASE_PORT" default:"5432"`
	User     string `envconfig:"DATABASE_USER" required:"true"`
	Password string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DBName   string `envconfig:"DATABASE_DBNAME" required:"true"`
	SSLMode  string `envconfig:"DATABASE_SSLMODE" default:"require"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" required:"true"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT" required:"true"`
	AccessKeyID     string `envconfig:"S3_ACCESSKEYID" required:"true"`
	SecretAccessKey string `envconfig:"S3_SECRETACCESSKEY" required:"true"`
	BucketName      string `envconfig:"S3_BUCKETNAME" required:"true"`
	Region          string `envconfig:"S3_REGION" required:"true"`
}

type AuthConfig struct {
	JWTSecret  string        `envconfig:"AUTH_JWT_SECRET" required:"true"`
	Issuer     string        `envconfig:"AUTH_ISSUER" default:"poolbook"`
	AccessTTL  time.Duration `envconfig:"AUTH_ACCESS_TTL" default:"30m"`
	RefreshTTL time.Duration `envconfig:"AUTH_REFRESH_TTL" default:"168h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Host: %s, Port: %d, User: %s, Password: ***, DBName: %s, SSLMode: %s}",
		c.Host, c.Port, c.User, c.DBName, c.SSLMode)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, BucketName: %s, Region: %s}",
		c.Endpoint, c.AccessKeyID, c.BucketName, c.Region)
}

func (c AuthConfig) String() string {
	return fmt.Sprintf("AuthConfig{JWTSecret: ***, Issuer: %s, AccessTTL: %s, RefreshTTL: %s}",
		c.Issuer, c.AccessTTL, c.RefreshTTL)
}
