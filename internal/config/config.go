// Package config loads resumematch settings from flags, an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/muhammadolammi/resumematch/internal/extract"
	"github.com/muhammadolammi/resumematch/internal/matching"
)

type Config struct {
	DBURL       string           `mapstructure:"db-url"`
	RabbitMQURL string           `mapstructure:"rabbitmq-url"`
	Storage     StorageConfig    `mapstructure:"storage"`
	Worker      WorkerConfig     `mapstructure:"worker"`
	Matching    matching.Weights `mapstructure:"matching"`
	Parsing     ParsingConfig    `mapstructure:"parsing"`
}

// StorageConfig points at the R2 bucket holding uploaded résumés.
type StorageConfig struct {
	AccountID string `mapstructure:"account-id"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access-key"`
	SecretKey string `mapstructure:"secret-key"`
}

type WorkerConfig struct {
	Workers         int    `mapstructure:"workers" validate:"min=1,max=64"`
	Queue           string `mapstructure:"queue" validate:"required"`
	UpdatesExchange string `mapstructure:"updates-exchange" validate:"required"`
	Concurrency     int    `mapstructure:"concurrency" validate:"min=1,max=64"`
}

type ParsingConfig struct {
	MinTextLength int  `mapstructure:"min-text-length" validate:"min=1"`
	PDFToText     bool `mapstructure:"pdftotext"`
}

var defaults = map[string]any{
	"worker.workers":             3,
	"worker.queue":               "jobs",
	"worker.updates-exchange":    "job_updates",
	"worker.concurrency":         4,
	"matching.skills-weight":     matching.DefaultWeights().Skills,
	"matching.experience-weight": matching.DefaultWeights().Experience,
	"matching.education-weight":  matching.DefaultWeights().Education,
	"parsing.min-text-length":    extract.MinTextLength,
	"parsing.pdftotext":          true,
}

// envs maps config keys to the environment variables read for them.
var envs = map[string][]string{
	"db-url":                     {"DB_URL"},
	"rabbitmq-url":               {"RABBITMQ_URL"},
	"storage.account-id":         {"R2_ACCOUNT_ID", "R2_ACCCOUNT_ID"},
	"storage.bucket":             {"R2_BUCKET"},
	"storage.access-key":         {"R2_ACCESS_KEY"},
	"storage.secret-key":         {"R2_SECRET_KEY"},
	"worker.workers":             {"WORKERS"},
	"worker.queue":               {"QUEUE"},
	"worker.updates-exchange":    {"UPDATES_EXCHANGE"},
	"worker.concurrency":         {"CONCURRENCY"},
	"matching.skills-weight":     {"MATCHING_SKILLS_WEIGHT"},
	"matching.experience-weight": {"MATCHING_EXPERIENCE_WEIGHT"},
	"matching.education-weight":  {"MATCHING_EDUCATION_WEIGHT"},
	"parsing.min-text-length":    {"PARSING_MIN_TEXT_LENGTH"},
	"parsing.pdftotext":          {"PARSING_PDFTOTEXT"},
}

// Load applies defaults and environment bindings to v and decodes the result.
// Any config file must already be read into v.
func Load(v *viper.Viper) (*Config, error) {
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	for k, names := range envs {
		if err := v.BindEnv(append([]string{k}, names...)...); err != nil {
			return nil, fmt.Errorf("binding %s environment variable: %w", names[0], err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.Matching.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ValidateWorker checks the settings only the queue worker and the
// recalculate command need.
func (c *Config) ValidateWorker() error {
	validate := validator.New()
	checks := []struct {
		env   string
		value string
		tag   string
	}{
		{"DB_URL", c.DBURL, "required"},
		{"RABBITMQ_URL", c.RabbitMQURL, "required,url"},
		{"R2_ACCOUNT_ID", c.Storage.AccountID, "required"},
		{"R2_BUCKET", c.Storage.Bucket, "required"},
		{"R2_ACCESS_KEY", c.Storage.AccessKey, "required"},
		{"R2_SECRET_KEY", c.Storage.SecretKey, "required"},
	}

	var errs []error
	for _, ch := range checks {
		if err := validate.Var(ch.value, ch.tag); err != nil {
			errs = append(errs, fmt.Errorf("%s: %s", ch.env, describe(err)))
		}
	}
	return errors.Join(errs...)
}

// ValidateDatabase checks the settings needed to reach Postgres.
func (c *Config) ValidateDatabase() error {
	if strings.TrimSpace(c.DBURL) == "" {
		return errors.New("DB_URL: empty in environment")
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if verrs[0].Tag() == "required" {
			return "empty in environment"
		}
		return "failed " + verrs[0].Tag() + " check"
	}
	return err.Error()
}
