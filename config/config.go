package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/studieren/blogly/models"
)

type Config struct {
	Addr            string
	DBDriver        string
	DatabaseURL     string
	DBEcho          bool
	DBMaxOpenConns  int
	RedisURL        string
	DefaultImageURL string
	GinMode         string
	CORSOrigins     []string
	Debug           bool
}

// Load reads envFile (if present) into the environment, then builds the
// config from environment variables with fallbacks. Variables already set
// in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	return Config{
		Addr:            getenv("BLOGLY_ADDR", ":5000"),
		DBDriver:        getenv("DB_DRIVER", "sqlite"),
		DatabaseURL:     getenv("DATABASE_URL", "blogly.db"),
		DBEcho:          getenvBool("DB_ECHO", false),
		DBMaxOpenConns:  getenvInt("DB_MAX_OPEN_CONNS", 25),
		RedisURL:        getenv("REDIS_URL", ""),
		DefaultImageURL: getenv("DEFAULT_IMAGE_URL", models.DefaultImageURL),
		GinMode:         getenv("GIN_MODE", "release"),
		CORSOrigins:     getenvList("CORS_ORIGINS"),
		Debug:           getenvBool("BLOGLY_DEBUG", false),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
