package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every setting the API reads from the environment.
type Config struct {
	ServerPort string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	Tables             Tables

	RedisURL         string
	AuditDatabaseURL string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool

	CORSAllowedOrigins []string
	EventQueueSize     int
}

// Tables maps each record collection to its DynamoDB table.
type Tables struct {
	Clients          string
	Quotes           string
	Sales            string
	FinancialEntries string
	Payments         string
	Notifications    string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		Tables: Tables{
			Clients:          getEnv("CLIENTS_TABLE", "clients"),
			Quotes:           getEnv("QUOTES_TABLE", "quotes"),
			Sales:            getEnv("SALES_TABLE", "sales"),
			FinancialEntries: getEnv("FINANCIAL_ENTRIES_TABLE", "financial_entries"),
			Payments:         getEnv("PAYMENTS_TABLE", "payments"),
			Notifications:    getEnv("NOTIFICATIONS_TABLE", "notifications"),
		},

		RedisURL:         os.Getenv("REDIS_URL"),
		AuditDatabaseURL: os.Getenv("AUDIT_DATABASE_URL"),

		MercadoPagoAccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentGatewayMock:         isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		EventQueueSize:     getEnvInt("EVENT_QUEUE_SIZE", 100),
	}
}

// SandboxPayments reports whether the Mercado Pago token is a test token.
func (c *Config) SandboxPayments() bool {
	return strings.HasPrefix(c.MercadoPagoAccessToken, "TEST-")
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
