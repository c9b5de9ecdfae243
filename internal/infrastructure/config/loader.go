package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PR"

// LoadConfig reads configuration for the given environment from
// configs/<environment>.yaml, layering .env and PR_-prefixed environment
// variables on top. Environment variables win over file values.
func LoadConfig(environment string) (*Config, error) {
	// Missing .env is fine; environment variables may come from the host.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName(environment)
	v.SetConfigType("yaml")
	v.AddConfigPath("configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No file for this environment; defaults plus env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Environment = environment
	normalizeDurations(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 5)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.database", "payments")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 10)
	v.SetDefault("database.queryTimeout", 10)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	// Secrets normally arrive through the environment; registering the
	// keys here is what lets AutomaticEnv surface them during Unmarshal.
	v.SetDefault("database.password", "")
	v.SetDefault("provider.baseUrl", "")
	v.SetDefault("provider.apiKey", "")
	v.SetDefault("provider.webhookSecret", "")
	v.SetDefault("provider.requestTimeout", 10)
	v.SetDefault("admin.keyHash", "")
}

// normalizeDurations converts the raw numeric values unmarshaled into
// duration fields from their documented units into time.Duration.
func normalizeDurations(cfg *Config) {
	cfg.Server.ReadTimeout *= time.Second
	cfg.Server.WriteTimeout *= time.Second
	cfg.Server.IdleTimeout *= time.Second
	cfg.Server.ReadHeaderTimeout *= time.Second
	cfg.Server.ShutdownTimeout *= time.Second

	cfg.Database.ConnMaxLifetime *= time.Minute
	cfg.Database.ConnMaxIdleTime *= time.Minute
	cfg.Database.QueryTimeout *= time.Second
	cfg.Database.RetryDelay *= time.Second

	cfg.Provider.RequestTimeout *= time.Second
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if cfg.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if cfg.Provider.WebhookSecret == "" {
		return fmt.Errorf("provider webhook secret is required")
	}
	if cfg.Admin.KeyHash == "" {
		return fmt.Errorf("admin key hash is required")
	}
	return nil
}
