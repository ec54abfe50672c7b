package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	BaseURL     string

	Database DatabaseConfig
	Store    StoreConfig
	Google   GoogleConfig

	SessionKey  string
	AdminSecret string
	AdminEmails []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// StoreConfig selects which storefront this deployment serves and how it
// talks to the owner. Kind is "shop" or "salon".
type StoreConfig struct {
	Kind            string
	Name            string
	Currency        string
	WhatsApp        string
	AddOnLabel      string
	AddOnAmount     decimal.Decimal
	AddOnCategories []string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

func (d DatabaseConfig) Configured() bool {
	return d.Host != ""
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode)
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional, plain env vars are enough
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	addOnAmount, err := decimal.NewFromString(getEnvOrViper("STORE_ADDON_AMOUNT", "0"))
	if err != nil {
		return nil, fmt.Errorf("STORE_ADDON_AMOUNT: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		BaseURL:     getEnvOrViper("BASE_URL", "http://localhost:8080"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", ""),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Store: StoreConfig{
			Kind:            getEnvOrViper("STORE_KIND", "shop"),
			Name:            getEnvOrViper("STORE_NAME", "Laureta Scents"),
			Currency:        getEnvOrViper("STORE_CURRENCY", "R"),
			WhatsApp:        getEnvOrViper("STORE_WHATSAPP", ""),
			AddOnLabel:      getEnvOrViper("STORE_ADDON_LABEL", ""),
			AddOnAmount:     addOnAmount,
			AddOnCategories: splitList(getEnvOrViper("STORE_ADDON_CATEGORIES", "")),
		},
		Google: GoogleConfig{
			ClientID:     getEnvOrViper("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnvOrViper("GOOGLE_CLIENT_SECRET", ""),
		},
		SessionKey:  getEnvOrViper("SESSION_KEY", ""),
		AdminSecret: getEnvOrViper("ADMIN_JWT_SECRET", ""),
		AdminEmails: splitList(getEnvOrViper("ADMIN_EMAILS", "")),
	}

	if cfg.Store.Kind != "shop" && cfg.Store.Kind != "salon" {
		return nil, fmt.Errorf("STORE_KIND must be shop or salon, got %q", cfg.Store.Kind)
	}
	if cfg.Store.WhatsApp == "" {
		return nil, fmt.Errorf("STORE_WHATSAPP is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
