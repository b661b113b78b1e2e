package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr is optional. Empty disables the menu cache.
	RedisAddr    string
	MenuCacheTTL time.Duration

	SessionSecret string
	SessionTTL    time.Duration

	// PolicyFile is optional. Empty keeps the built-in role table.
	PolicyFile string

	OrderIDMaxRetries   int
	StatusGaugeSchedule string
}

var ErrSessionSecretRequired = errors.New("SESSION_SECRET must be set")

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "pizzastore")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("MENU_CACHE_TTL", "5m")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("POLICY_FILE", "")
	v.SetDefault("ORDER_ID_MAX_RETRIES", 5)
	v.SetDefault("STATUS_GAUGE_SCHEDULE", "*/30 * * * * *")
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:            v.GetString("HTTP_PORT"),
		DBHost:              v.GetString("DB_HOST"),
		DBPort:              v.GetString("DB_PORT"),
		DBUser:              v.GetString("DB_USER"),
		DBPassword:          v.GetString("DB_PASSWORD"),
		DBName:              v.GetString("DB_NAME"),
		DBSslMode:           v.GetString("DB_SSLMODE"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		MenuCacheTTL:        v.GetDuration("MENU_CACHE_TTL"),
		SessionSecret:       v.GetString("SESSION_SECRET"),
		SessionTTL:          v.GetDuration("SESSION_TTL"),
		PolicyFile:          v.GetString("POLICY_FILE"),
		OrderIDMaxRetries:   v.GetInt("ORDER_ID_MAX_RETRIES"),
		StatusGaugeSchedule: v.GetString("STATUS_GAUGE_SCHEDULE"),
	}

	if cfg.SessionSecret == "" {
		return Config{}, ErrSessionSecretRequired
	}

	return cfg, nil
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
