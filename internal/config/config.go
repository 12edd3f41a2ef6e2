package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// 支持的数据库驱动
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config 应用配置
type Config struct {
	Env          string `validate:"required"`
	Port         string `validate:"required,numeric"`
	DBDriver     string `validate:"oneof=sqlite postgres"`
	DatabaseURL  string `validate:"required"`
	MaxOpenConns int    `validate:"gte=1"`
	MaxIdleConns int    `validate:"gte=0"`
	DBDebug      bool
	CacheSize    int `validate:"gte=0"`
	CacheTTL     time.Duration
	LogLevel     string `validate:"oneof=trace debug info warn error"`
	LogFormat    string `validate:"oneof=json console"`
}

// Load 加载配置
func Load() *Config {
	driver := getEnv("DB_DRIVER", DriverSQLite)

	var dbURL string
	switch driver {
	case DriverPostgres:
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "movies")
		dbSSL := getEnv("DB_SSLMODE", "disable")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)
	default:
		// 数据集只读，直接以只读模式打开文件
		dbURL = fmt.Sprintf("file:%s?mode=ro", getEnv("DB_PATH", "movies.db"))
	}

	env := getEnv("APP_ENV", "development")
	logFormat := "console"
	if env == "production" {
		logFormat = "json"
	}

	return &Config{
		Env:          env,
		Port:         getEnv("PORT", "3000"),
		DBDriver:     driver,
		DatabaseURL:  dbURL,
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBDebug:      getEnv("DB_DEBUG", "false") == "true",
		CacheSize:    getEnvInt("CACHE_SIZE", 1000),
		CacheTTL:     time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", logFormat),
	}
}

// Validate 校验配置是否合法
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}
