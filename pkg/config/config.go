package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	DefaultMaxFilesPerCategory = 500
	DefaultMinBodyLen          = 60
)

type Config struct {
	Root                string
	MaxFilesPerCategory int
	MinBodyLen          int
	OutCSV              string
	OutXLSX             string
	OutJSONL            string
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Default().Warn("Ignoring non-integer env value", "key", key, "value", value)
		return defaultValue
	}
	return n
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when present. Flags on the CLIs override these values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{
		Root:                getEnv("CORPUS_ROOT", ""),
		MaxFilesPerCategory: getEnvInt("MAX_FILES_PER_CATEGORY", DefaultMaxFilesPerCategory),
		MinBodyLen:          getEnvInt("MIN_BODY_LEN", DefaultMinBodyLen),
		OutCSV:              getEnv("OUT_CSV", "processed/corpus.csv"),
		OutXLSX:             getEnv("OUT_XLSX", "processed/corpus.xlsx"),
		OutJSONL:            getEnv("OUT_JSONL", ""),
	}

	return conf, nil
}
