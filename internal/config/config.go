// Package config loads the process configuration: settings from the
// environment (prefix CHAINTRACK) and the polled chains from a YAML file.
// Both are validated eagerly; a missing required field stops startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/chaintrack/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Prefix is prepended to every environment variable read by Load.
const Prefix = "CHAINTRACK"

const (
	RuleStoreRedis    = "redis"
	RuleStorePostgres = "postgres"

	NotifierLog      = "log"
	NotifierTelegram = "telegram"
	NotifierNATS     = "nats"
)

type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

type Telegram struct {
	Token   string `envconfig:"TOKEN"`
	BaseURL string `envconfig:"BASE_URL" default:"https://api.telegram.org" validate:"omitempty,url"`
}

type NATS struct {
	URL           string `envconfig:"URL" default:"nats://localhost:4222" validate:"omitempty,url"`
	SubjectPrefix string `envconfig:"SUBJECT_PREFIX" default:"chaintrack.matches"`
	Stream        string `envconfig:"STREAM" default:"CHAINTRACK_MATCHES"`
}

type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"chaintrack"`
}

type Idempotency struct {
	// ClaimTTL bounds how long a delivery may stay in flight before another
	// attempt may claim it.
	ClaimTTL time.Duration `envconfig:"CLAIM_TTL" default:"2m" validate:"gt=0"`
	// Retention is how long delivered keys are remembered.
	Retention time.Duration `envconfig:"RETENTION" default:"72h" validate:"gt=0"`
}

// Config is the process level configuration.
type Config struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ChainsFile string `envconfig:"CHAINS_FILE" default:"chains.yaml" validate:"required"`

	Redis Redis `envconfig:"REDIS"`

	RuleStore   string `envconfig:"RULE_STORE" default:"redis" validate:"oneof=redis postgres"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" validate:"required_if=RuleStore postgres"`

	Notifiers []string `envconfig:"NOTIFIERS" default:"log" validate:"min=1,dive,oneof=log telegram nats"`
	Telegram  Telegram `envconfig:"TELEGRAM"`
	NATS      NATS     `envconfig:"NATS"`

	Telemetry   Telemetry   `envconfig:"TELEMETRY"`
	Idempotency Idempotency `envconfig:"IDEMPOTENCY"`

	RuleRefreshInterval time.Duration `envconfig:"RULE_REFRESH_INTERVAL" default:"30s" validate:"gt=0"`
	CallTimeout         time.Duration `envconfig:"CALL_TIMEOUT" default:"10s" validate:"gt=0"`
}

// HasNotifier reports whether name is one of the enabled notifiers.
func (c Config) HasNotifier(name string) bool {
	return slices.Contains(c.Notifiers, name)
}

func (c Config) validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	if c.HasNotifier(NotifierTelegram) && c.Telegram.Token == "" {
		return validator.Invalid("Telegram.Token", "", "required_with=telegram")
	}

	if c.HasNotifier(NotifierNATS) && c.NATS.URL == "" {
		return validator.Invalid("NATS.URL", "", "required_with=nats")
	}

	return nil
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	for i, name := range cfg.Notifiers {
		cfg.Notifiers[i] = strings.ToLower(strings.TrimSpace(name))
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ErrNoChains is returned when the chains file declares no chain.
var ErrNoChains = errors.New("no chains configured")

// LoadChains reads and validates the chains file at path.
func LoadChains(path string) ([]Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chains file: %w", err)
	}

	return ParseChains(data)
}

// ParseChains decodes a chains document. The result is sorted by chain name.
func ParseChains(data []byte) ([]Chain, error) {
	var file struct {
		Chains map[string]Chain `yaml:"chains"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse chains file: %w", err)
	}

	if len(file.Chains) == 0 {
		return nil, ErrNoChains
	}

	chains := make([]Chain, 0, len(file.Chains))
	for name, chain := range file.Chains {
		chain.Name = name
		chain.applyDefaults()

		if err := chain.validate(); err != nil {
			return nil, fmt.Errorf("chain %s: %w", name, err)
		}

		chains = append(chains, chain)
	}

	slices.SortFunc(chains, func(a, b Chain) int {
		return strings.Compare(a.Name, b.Name)
	})

	return chains, nil
}
