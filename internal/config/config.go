package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	PubSub    PubSubConfig
	NASA      NASAConfig
	OpenAI    OpenAIConfig
	Retention RetentionConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// PubSubConfig contains Google Cloud Pub/Sub settings for the prediction topic.
type PubSubConfig struct {
	ProjectID       string
	Topic           string
	Subscription    string
	CredentialsPath string
}

// NASAConfig holds settings for the NASA POWER historical data API.
type NASAConfig struct {
	BaseURL string
}

// OpenAIConfig holds settings for the LLM delegate.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// RetentionConfig holds the prediction-record purge schedule.
type RetentionConfig struct {
	CronSchedule string
	MaxAgeDays   int
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "planting"),
		},
		PubSub: PubSubConfig{
			ProjectID:       os.Getenv("PUBSUB_PROJECT_ID"),
			Topic:           getenvWithDefault("PUBSUB_TOPIC_PREDICTION", "prediction"),
			Subscription:    getenvWithDefault("PUBSUB_SUBSCRIPTION_PREDICTION", "prediction-worker"),
			CredentialsPath: os.Getenv("GOOGLE_PUBSUB_CREDENTIALS_PATH"),
		},
		NASA: NASAConfig{
			BaseURL: getenvWithDefault("NASA_POWER_BASE_URL", "https://power.larc.nasa.gov"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  getenvWithDefault("OPENAI_MODEL", "gpt-4o"),
		},
		Retention: RetentionConfig{
			CronSchedule: getenvWithDefault("PREDICTION_RETENTION_CRON", "0 3 * * *"),
			MaxAgeDays:   90,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.PubSub.ProjectID == "" {
		return errors.New("PUBSUB_PROJECT_ID must be provided")
	}

	if c.PubSub.Topic == "" {
		return errors.New("PUBSUB_TOPIC_PREDICTION must not be empty")
	}

	if c.PubSub.Subscription == "" {
		return errors.New("PUBSUB_SUBSCRIPTION_PREDICTION must not be empty")
	}

	if c.NASA.BaseURL == "" {
		return errors.New("NASA_POWER_BASE_URL must not be empty")
	}

	if c.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY must be provided")
	}

	if c.OpenAI.Model == "" {
		return errors.New("OPENAI_MODEL must not be empty")
	}

	if c.Retention.CronSchedule == "" {
		return errors.New("PREDICTION_RETENTION_CRON must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
