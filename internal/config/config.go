package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/multierr"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort           string
	JWTSecret          string
	JWTTTL             time.Duration
	LogLevel           string
	OperatorWorkers    int
	AMQPURL            string
	AMQPExchange       string
	CORSAllowedOrigins []string
	MigrationsPath     string
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres_address":     "localhost",
	"postgres_port":        "5433",
	"postgres_db":          "postgres",
	"postgres_username":    "postgres",
	"postgres_password":    "testpassword",
	"http_port":            "9446",
	"jwt_secret":           "local-development-secret",
	"jwt_ttl":              "720h",
	"log_level":            "info",
	"operator_workers":     "4",
	"amqp_url":             "",
	"amqp_exchange":        "finance.changes",
	"cors_allowed_origins": "*",
	"migrations_path":      "file://migrations",
}

// ProcessEnvironmentVariables builds the Config from defaults, then the YAML
// file named by CONFIG_FILE if set, then environment variables. Keys are the
// lower-cased environment variable names.
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	var errs error

	ttl, err := time.ParseDuration(k.String("jwt_ttl"))
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("invalid JWT_TTL %q: %w", k.String("jwt_ttl"), err))
	}

	workers, err := strconv.Atoi(k.String("operator_workers"))
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", k.String("operator_workers"), err))
	}

	var origins []string
	for _, origin := range strings.Split(k.String("cors_allowed_origins"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	cfg := &Config{
		PostgresAddress:    k.String("postgres_address"),
		PostgresPort:       k.String("postgres_port"),
		PostgresDB:         k.String("postgres_db"),
		PostgresUsername:   k.String("postgres_username"),
		PostgresPassword:   k.String("postgres_password"),
		HTTPPort:           k.String("http_port"),
		JWTSecret:          k.String("jwt_secret"),
		JWTTTL:             ttl,
		LogLevel:           k.String("log_level"),
		OperatorWorkers:    workers,
		AMQPURL:            k.String("amqp_url"),
		AMQPExchange:       k.String("amqp_exchange"),
		CORSAllowedOrigins: origins,
		MigrationsPath:     k.String("migrations_path"),
	}

	if errs != nil {
		return nil, errs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs error

	for name, port := range map[string]string{"POSTGRES_PORT": c.PostgresPort, "HTTP_PORT": c.HTTPPort} {
		if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
			errs = multierr.Append(errs, fmt.Errorf("invalid %s %q: must be a number between 1 and 65535", name, port))
		}
	}

	if c.JWTSecret == "" {
		errs = multierr.Append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.JWTTTL <= 0 {
		errs = multierr.Append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.OperatorWorkers < 1 {
		errs = multierr.Append(errs, fmt.Errorf("invalid OPERATOR_WORKERS %d: must be at least 1", c.OperatorWorkers))
	}

	if c.AMQPURL != "" {
		u, err := url.Parse(c.AMQPURL)
		if err != nil || (u.Scheme != "amqp" && u.Scheme != "amqps") {
			errs = multierr.Append(errs, errors.New("invalid AMQP_URL: scheme must be amqp or amqps"))
		}
		if c.AMQPExchange == "" {
			errs = multierr.Append(errs, errors.New("AMQP_EXCHANGE is required when AMQP_URL is set"))
		}
	}

	return errs
}

// PostgresDSN is the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
