package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// App holds process configuration read once at startup.
type App struct {
	Port              string
	MongoURI          string
	MongoDB           string
	RedisAddr         string
	JwtSecret         []byte
	RazorpayKeyID     string
	RazorpayKeySecret string
}

var Cfg *App

// Load reads .env (if present) and the environment, and fails fast when a
// required secret is missing.
func Load() *App {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := &App{
		Port:              getEnv("PORT", ":8080"),
		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGODB_DB", "craftdb"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		JwtSecret:         []byte(mustEnv("JWT_SECRET")),
		RazorpayKeyID:     mustEnv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: mustEnv("RAZORPAY_KEY_SECRET"),
	}

	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	Cfg = cfg
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return v
}
