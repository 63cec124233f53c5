package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Data           DataConfig           `mapstructure:"data"`
	Cache          CacheConfig          `mapstructure:"cache"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Security       SecurityConfig       `mapstructure:"security"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DataConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
	RatingsPath string `mapstructure:"ratings_path"`
}

type CacheConfig struct {
	URL        string        `mapstructure:"url"`
	ResultsTTL time.Duration `mapstructure:"results_ttl"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RecommendationConfig struct {
	TopN                int     `mapstructure:"top_n"`
	MaxSeeds            int     `mapstructure:"max_seeds"`
	PreferenceRating    float64 `mapstructure:"preference_rating"`
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	MinOverlap          int     `mapstructure:"min_overlap"`
}

type SecurityConfig struct {
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	// Set defaults
	setDefaults()

	// Environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with env vars and defaults
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

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "development")

	// Dataset defaults
	viper.SetDefault("data.catalog_path", "./data/anime.csv")
	viper.SetDefault("data.ratings_path", "./data/train.csv")

	// Cache defaults; empty URL disables the result cache
	viper.SetDefault("cache.url", "")
	viper.SetDefault("cache.results_ttl", "15m")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Recommendation defaults
	viper.SetDefault("recommendation.top_n", 10)
	viper.SetDefault("recommendation.max_seeds", 3)
	viper.SetDefault("recommendation.preference_rating", 10.0)
	viper.SetDefault("recommendation.confidence_threshold", 0.4)
	viper.SetDefault("recommendation.min_overlap", 2)

	// Security defaults
	viper.SetDefault("security.cors.allowed_origins", []string{"*"})
	viper.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors.allowed_headers", []string{"*"})
}
