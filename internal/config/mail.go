package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// MailConfig carries the SMTP account used by the contact relay. It is built
// once at startup and passed to the mailer; nothing reads it globally.
type MailConfig struct {
	Host     string
	Port     int
	SSL      bool
	Username string
	Password string
	To       string
	Timeout  time.Duration
}

// LoadMailConfig reads GMAIL_* first and falls back to the generic SMTP_* names.
func LoadMailConfig() MailConfig {
	user := firstEnv("GMAIL_USER", "SMTP_USER")
	cfg := MailConfig{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnvAsInt("SMTP_PORT", 587),
		SSL:      getEnvAsBool("SMTP_SSL", false),
		Username: user,
		Password: firstEnv("GMAIL_PASS", "SMTP_PASS"),
		To:       getEnv("CONTACT_TO", user),
		Timeout:  getEnvAsDuration("SMTP_TIMEOUT", 15*time.Second),
	}
	return cfg
}

// Configured reports whether both the account identity and secret are set.
func (c MailConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// Inbox is where contact messages are delivered.
func (c MailConfig) Inbox() string {
	if c.To != "" {
		return c.To
	}
	return c.Username
}

// Domain is the part of the account address after '@', used for Message-IDs.
func (c MailConfig) Domain() string {
	if i := strings.LastIndex(c.Username, "@"); i >= 0 && i < len(c.Username)-1 {
		return c.Username[i+1:]
	}
	return c.Host
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
