package config

import (
	"strings"

	"github.com/Hemachandra9899/Bacckend/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// LoadConfig loads the config file and ENV variables into a Config struct
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SECONDBRAIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	// Secrets are only ever read from the environment. The variable names
	// match the ones the original deployment used.
	bindLegacyEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("llm.service", "groq")
	viper.SetDefault("llm.model", "llama-3.1-8b-instant")
	viper.SetDefault("llm.endpoint", "https://api.groq.com/openai/v1")
	viper.SetDefault("embeddings.service", "local")
	viper.SetDefault("embeddings.model", "all-MiniLM-L6-v2")
	viper.SetDefault("embeddings.dimensions", 384)
	viper.SetDefault("vector_store.index_name", "portfolio-free")
	viper.SetDefault("vector_store.dimensions", 1536)
	viper.SetDefault("notes.top_k", 3)
	viper.SetDefault("notes.list_limit", 10)
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("log.level", "info")
}

func bindLegacyEnv() {
	binds := map[string]string{
		"llm.api_key":             "GROQ_API_KEY",
		"embeddings.api_key":      "OPENAI_API_KEY",
		"vector_store.api_key":    "PINECONE_API_KEY",
		"vector_store.index_name": "PINECONE_INDEX_NAME",
		"server.port":             "PORT",
	}
	for key, env := range binds {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("Error binding environment variable: %s", err)
		}
	}
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
