package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Admin     AdminConfig
	JWT       JWTConfig
	Translate TranslateConfig
	LogLevel  string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// AdminConfig holds the store-admin credentials. PasswordHash, when set, is a
// bcrypt hash and takes precedence over the plain Password comparison.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// TranslateConfig holds translation-client configuration
type TranslateConfig struct {
	PrimaryURL  string
	FallbackURL string
	Timeout     time.Duration
	CacheSize   int
	CacheTTL    time.Duration
}

// Load loads configuration from environment variables and an optional config file
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedOrigins", []string{"*"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "nanjundeshwara-stores")
	viper.SetDefault("Admin.Username", "admin")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Translate.PrimaryURL", "https://libretranslate.de/translate")
	viper.SetDefault("Translate.FallbackURL", "https://translate.googleapis.com/translate_a/single")
	viper.SetDefault("Translate.Timeout", 10*time.Second)
	viper.SetDefault("Translate.CacheSize", 2048)
	viper.SetDefault("Translate.CacheTTL", 12*time.Hour)
	viper.SetDefault("LogLevel", "info")
}
