package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration, read from the environment at startup.
// A .env file in the working directory is loaded first by cmd/api.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION"            envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"     envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
	S3Endpoint         string `env:"S3_ENDPOINT"`

	Tables Tables

	DocumentsBucket   string        `env:"RESOLUTION_DOCS_BUCKET" envDefault:"escrow-resolution-docs"`
	DocumentUploadTTL time.Duration `env:"RESOLUTION_DOCS_UPLOAD_TTL" envDefault:"15m"`

	// LedgerDSN points at the Postgres settlement ledger. Empty keeps instructions in process (local only).
	LedgerDSN string `env:"LEDGER_DB_SOURCE"`

	MercadoPagoAccessToken string        `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool          `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	PaymentTimeout         time.Duration `env:"PAYMENT_TIMEOUT" envDefault:"30s"`
	TestPayerEmail         string        `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`

	JWTSecret string `env:"JWT_SECRET"`

	DepositCaptureTTL  time.Duration `env:"DEPOSIT_CAPTURE_TTL" envDefault:"48h"`
	DepositAmounts     DepositAmounts `env:"DEPOSIT_AMOUNTS"`
	DocReferencePrefix string         `env:"DOC_REFERENCE_PREFIX" envDefault:"admin-resolution"`
}

type Tables struct {
	Projects string `env:"PROJECTS_TABLE" envDefault:"projects"`
	Quotes   string `env:"QUOTES_TABLE"   envDefault:"quotes"`
	Deposits string `env:"DEPOSITS_TABLE" envDefault:"estimate_deposits"`
	Bookings string `env:"BOOKINGS_TABLE" envDefault:"booking_requests"`
	Cases    string `env:"CASES_TABLE"    envDefault:"dispute_cases"`
}

// DepositAmounts overrides deposit amounts per category, written as "plumbing:2900,roofing:7900".
type DepositAmounts map[string]int64

func (d *DepositAmounts) UnmarshalText(text []byte) error {
	out := DepositAmounts{}
	for _, pair := range strings.Split(string(text), ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		category, raw, ok := strings.Cut(pair, ":")
		if !ok {
			return fmt.Errorf("deposit amount %q: expected category:cents", pair)
		}
		cents, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || cents <= 0 {
			return fmt.Errorf("deposit amount %q: cents must be a positive integer", pair)
		}
		out[strings.ToLower(strings.TrimSpace(category))] = cents
	}
	*d = out
	return nil
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}
