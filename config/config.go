// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 5*time.Second)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "radya_hi5_db")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.migrations_dir", "db/migrations")
	v.SetDefault("postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("postgres.query_timeout", 2*time.Second)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)

	v.SetDefault("roster.members_file", "data/team-members.json")
	v.SetDefault("roster.emails_file", "data/team-members-email.json")
	v.SetDefault("roster.values_file", "data/values.json")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "radya-hi5")
	v.SetDefault("auth.audience", "radya-hi5-api")
	v.SetDefault("auth.token_ttl", 24*time.Hour)

	v.SetDefault("mail.api_key", "")
	v.SetDefault("mail.base_url", "https://api.resend.com")
	v.SetDefault("mail.from", "Radya Hi5 <noreply@hi5.radyalabs.id>")
	v.SetDefault("mail.app_url", "http://localhost:3000")
	v.SetDefault("mail.timeout", 10*time.Second)
	v.SetDefault("mail.concurrency", 3)

	v.SetDefault("kudos.message_max_len", 500)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"postgres.migrations_dir",
		"postgres.migrate_timeout",
		"postgres.query_timeout",
		"postgres.max_conns",
		"postgres.min_conns",
		"roster.members_file",
		"roster.emails_file",
		"roster.values_file",
		"auth.jwt_secret",
		"auth.issuer",
		"auth.audience",
		"auth.token_ttl",
		"mail.api_key",
		"mail.base_url",
		"mail.from",
		"mail.app_url",
		"mail.timeout",
		"mail.concurrency",
		"kudos.message_max_len",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
