package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	// TokenSecret must hold identical content in every resource service;
	// token verification recomputes the signature locally.
	TokenSecret     string
	TokenTTLMinutes int

	AllowedOrigins []string

	UserServicePort        string
	TransactionServicePort string
	CategoryServicePort    string
	GatewayPort            string

	// Base URLs for the gateway's static service map.
	UserServiceURL         string
	TransactionServiceURL  string
	CategoryServiceURL     string
	ReportingServiceURL    string
	NotificationServiceURL string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional .env file for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		TokenSecret:     "dev-secret-change-me",
		TokenTTLMinutes: 30,

		AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},

		UserServicePort:        "8081",
		TransactionServicePort: "8082",
		CategoryServicePort:    "8083",
		GatewayPort:            "8080",

		UserServiceURL:         "http://localhost:8081",
		TransactionServiceURL:  "http://localhost:8082",
		CategoryServiceURL:     "http://localhost:8083",
		ReportingServiceURL:    "http://localhost:8084",
		NotificationServiceURL: "http://localhost:8085",
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")

	overrideString(&env.TokenSecret, "TOKEN_SECRET")
	if raw := os.Getenv("TOKEN_TTL_MINUTES"); len(raw) != 0 {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		env.TokenTTLMinutes = minutes
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); len(raw) != 0 {
		parts := strings.Split(raw, ",")
		origins := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); len(trimmed) != 0 {
				origins = append(origins, trimmed)
			}
		}
		env.AllowedOrigins = origins
	}

	overrideString(&env.UserServicePort, "USER_SERVICE_PORT")
	overrideString(&env.TransactionServicePort, "TRANSACTION_SERVICE_PORT")
	overrideString(&env.CategoryServicePort, "CATEGORY_SERVICE_PORT")
	overrideString(&env.GatewayPort, "GATEWAY_PORT")

	overrideString(&env.UserServiceURL, "USER_SERVICE_URL")
	overrideString(&env.TransactionServiceURL, "TRANSACTION_SERVICE_URL")
	overrideString(&env.CategoryServiceURL, "CATEGORY_SERVICE_URL")
	overrideString(&env.ReportingServiceURL, "REPORTING_SERVICE_URL")
	overrideString(&env.NotificationServiceURL, "NOTIFICATION_SERVICE_URL")

	return &env, nil
}

// ServiceMap builds the gateway's static service name to base URL mapping.
func (c *Config) ServiceMap() map[string]string {
	return map[string]string{
		"user":         c.UserServiceURL,
		"transaction":  c.TransactionServiceURL,
		"category":     c.CategoryServiceURL,
		"reporting":    c.ReportingServiceURL,
		"notification": c.NotificationServiceURL,
	}
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
