package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	Timezone          string `mapstructure:"TIMEZONE"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB    int    `mapstructure:"REDIS_SESSION_DB"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Team directory source: "mongo" or "yaml".
	DirectorySource string `mapstructure:"DIRECTORY_SOURCE"`
	DirectoryFile   string `mapstructure:"DIRECTORY_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("TIMEZONE", "Asia/Tokyo")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "fieldcal")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("SESSION_TTL_MINUTES", 720)
	v.SetDefault("DIRECTORY_SOURCE", "mongo")
	v.SetDefault("DIRECTORY_FILE", "./config/directory.yaml")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location is the zone used to decide which calendar day is "today".
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil || AppConfig.Timezone == "" {
		return time.Local
	}
	return loc
}

func SessionTTL() time.Duration {
	if AppConfig.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(AppConfig.SessionTTLMinutes) * time.Minute
}
