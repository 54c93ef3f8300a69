package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	LedgerBackendMemory   = "memory"
	LedgerBackendDynamoDB = "dynamodb"
	LedgerBackendBolt     = "bolt"

	defaultAdminAccessCode = "Xileff7pupu!"
)

// Config is the service configuration, read from the environment. A .env file
// is loaded by godotenv/autoload in cmd/api before this runs.
type Config struct {
	Port int

	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	ShopkeeperMock  bool
	AdminAccessCode string

	CashVerifyDelay  time.Duration
	PrintSettleDelay time.Duration
	QRServiceURL     string

	LedgerBackend  string
	LedgerBoltPath string
}

func Load() Config {
	cfg := Config{
		Port:             getenvInt("PORT", 8080),
		GeminiAPIKey:     firstNonEmpty(os.Getenv("GEMINI_API_KEY"), os.Getenv("API_KEY")),
		GeminiModel:      getenvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:    os.Getenv("GEMINI_BASE_URL"),
		ShopkeeperMock:   isEnabled(os.Getenv("SHOPKEEPER_MOCK")),
		AdminAccessCode:  getenvDefault("ADMIN_ACCESS_CODE", defaultAdminAccessCode),
		CashVerifyDelay:  getenvDuration("CASH_VERIFY_DELAY", 1500*time.Millisecond),
		PrintSettleDelay: getenvDuration("PRINT_SETTLE_DELAY", 800*time.Millisecond),
		QRServiceURL:     os.Getenv("QR_SERVICE_URL"),
		LedgerBackend:    strings.ToLower(getenvDefault("LEDGER_BACKEND", LedgerBackendMemory)),
		LedgerBoltPath:   getenvDefault("LEDGER_BOLT_PATH", "orders.db"),
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// getenvDuration accepts Go durations ("1.5s") or plain milliseconds ("1500").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
