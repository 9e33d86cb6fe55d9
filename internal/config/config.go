package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers supported by STORE_DRIVER.
const (
	StoreMongo = "mongo"
	StoreMySQL = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	MySQLDSN      string

	RedisAddr    string
	RedisDB      int
	RedisPass    string
	RoleCacheTTL time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	PaymentSecretKey       string
	PaymentCurrency        string
	VerifyPayments         bool
	ClearSelectionOnEnroll bool

	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerHost    string

	LogLevel  string
	LogFormat string
}

// Load builds Config from the environment, reading an optional .env file first.
func Load() *Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("STORE_DRIVER", StoreMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "sportsZone")
	v.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/sportszone?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("ROLE_CACHE_TTL", 5*time.Minute)
	v.SetDefault("ACCESS_TOKEN_SECRET", "change-me")
	v.SetDefault("TOKEN_TTL", 7*24*time.Hour)
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("PAYMENT_VERIFY", false)
	v.SetDefault("CLEAR_SELECTION_ON_ENROLL", false)
	v.SetDefault("REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	return &Config{
		ServerPort:             v.GetString("PORT"),
		StoreDriver:            strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:               v.GetString("MONGO_URI"),
		MongoDatabase:          v.GetString("MONGO_DATABASE"),
		MySQLDSN:               v.GetString("MYSQL_DSN"),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		RedisDB:                v.GetInt("REDIS_DB"),
		RedisPass:              v.GetString("REDIS_PASSWORD"),
		RoleCacheTTL:           v.GetDuration("ROLE_CACHE_TTL"),
		JWTSecret:              v.GetString("ACCESS_TOKEN_SECRET"),
		TokenTTL:               v.GetDuration("TOKEN_TTL"),
		PaymentSecretKey:       v.GetString("PAYMENT_SECRET_KEY"),
		PaymentCurrency:        strings.ToLower(v.GetString("PAYMENT_CURRENCY")),
		VerifyPayments:         v.GetBool("PAYMENT_VERIFY"),
		ClearSelectionOnEnroll: v.GetBool("CLEAR_SELECTION_ON_ENROLL"),
		RequestTimeout:         v.GetDuration("REQUEST_TIMEOUT"),
		CORSOrigins:            splitList(v.GetString("CORS_ORIGINS")),
		SwaggerHost:            v.GetString("SWAGGER_HOST"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		LogFormat:              v.GetString("LOG_FORMAT"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
