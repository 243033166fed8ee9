package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Classifier ClassifierConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StorageConfig struct {
	Backend string // "postgres" or "file"
	DataDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type ClassifierConfig struct {
	// Endpoint of the model inference server. Empty selects the built-in
	// lexicon fallback.
	Endpoint string
	// TimeoutSeconds bounds a single classification call.
	TimeoutSeconds int
	// PositiveLabel is the single raw label token mapped to POSITIVE;
	// every other raw label collapses to NEGATIVE.
	PositiveLabel string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-review-api")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORAGE_BACKEND", "postgres")
	viper.SetDefault("DATA_DIR", "data/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("CLASSIFIER_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CLASSIFIER_POSITIVE_LABEL", "LABEL_1")

	// .env is optional; environment variables and defaults cover the rest.
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Storage: StorageConfig{
			Backend: viper.GetString("STORAGE_BACKEND"),
			DataDir: viper.GetString("DATA_DIR"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Classifier: ClassifierConfig{
			Endpoint:       viper.GetString("CLASSIFIER_URL"),
			TimeoutSeconds: viper.GetInt("CLASSIFIER_TIMEOUT_SECONDS"),
			PositiveLabel:  viper.GetString("CLASSIFIER_POSITIVE_LABEL"),
		},
	}

	return config, nil
}
