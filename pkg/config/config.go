package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	TMDB struct {
		APIKey       string `envconfig:"TMDB_API_KEY"`
		BaseURL      string `envconfig:"TMDB_BASE_URL" default:"https://api.themoviedb.org/3"`
		ImageBaseURL string `envconfig:"TMDB_IMAGE_BASE_URL" default:"https://image.tmdb.org/t/p"`
	}
	HuggingFace struct {
		APIKey  string `envconfig:"HUGGING_FACE_API_KEY"`
		BaseURL string `envconfig:"HUGGING_FACE_BASE_URL" default:"https://router.huggingface.co"`
	}
	Auth struct {
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
		TokenTTL  int    `envconfig:"AUTH_TOKEN_TTL" default:"3600"`
	}
}

// HasGenerativeCredential reports whether the title generator may call the
// remote text-generation service. Absence is not an error: generation
// degrades to the local synthesizer.
func (c *Config) HasGenerativeCredential() bool {
	return c.HuggingFace.APIKey != ""
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
