package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Dataset   DatasetConfig
	Groq      GroqConfig
	Embedding EmbeddingConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	ShareKey    string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	PoolSize      int
	MinIdleConns  int
}

type DatasetConfig struct {
	RestaurantsCSV string
	EmbeddingsNPY  string
}

type GroqConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
	MaxTokens      int
	Enabled        bool
}

type EmbeddingConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	Dimension      int
	TimeoutSeconds int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	redisPoolSize, err := strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10"))
	if err != nil {
		return nil, errors.New("invalid redis pool size")
	}

	redisMinIdle, err := strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "5"))
	if err != nil {
		return nil, errors.New("invalid redis min idle conns")
	}

	embeddingDim, err := strconv.Atoi(getEnv("EMBEDDING_DIMENSION", "384"))
	if err != nil {
		return nil, errors.New("invalid embedding dimension")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "DineWise API"),
			Version:     getEnv("APP_VERSION", "2.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			ShareKey:    getEnv("APP_SHARE_KEY", ""),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "dinewise"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			PoolSize:      redisPoolSize,
			MinIdleConns:  redisMinIdle,
		},
		Dataset: DatasetConfig{
			RestaurantsCSV: getEnv("DATASET_CSV_PATH", "data/processed/restaurants.csv"),
			EmbeddingsNPY:  getEnv("DATASET_EMBEDDINGS_PATH", "data/processed/embeddings.npy"),
		},
		Groq: GroqConfig{
			APIKey:         getEnv("GROQ_API_KEY", ""),
			BaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:          getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
			TimeoutSeconds: 10,
			MaxTokens:      1024,
			Enabled:        getEnv("GROQ_ENABLED", "true") == "true",
		},
		Embedding: EmbeddingConfig{
			BaseURL:        getEnv("EMBEDDING_BASE_URL", ""),
			APIKey:         getEnv("EMBEDDING_API_KEY", ""),
			Model:          getEnv("EMBEDDING_MODEL", "all-MiniLM-L6-v2"),
			Dimension:      embeddingDim,
			TimeoutSeconds: 10,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.App.ShareKey == "" {
		return nil, errors.New("missing app share key")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
