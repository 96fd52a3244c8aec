package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	OutputFormat string        `yaml:"output_format"`
	NoColor      bool          `yaml:"no_color"`
	LogLevel     string        `yaml:"log_level"`
	Answers      AnswersConfig `yaml:"answers"`
	Slack        SlackConfig   `yaml:"slack"`
}

// AnswersConfig pre-answers interview questions; unset fields are prompted.
type AnswersConfig struct {
	WPSEnabled     *bool `yaml:"wps_enabled"`
	PasswordLength *int  `yaml:"password_length"`
	GuestNetworks  *bool `yaml:"guest_networks"`
}

type SlackConfig struct {
	WebhookURL string `yaml:"webhook_url"`
	Channel    string `yaml:"channel"`
}

func Default() *Config {
	return &Config{
		OutputFormat: FormatText,
		LogLevel:     "info",
	}
}

// LoadConfig reads a YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputFormat != FormatText && c.OutputFormat != FormatJSON {
		return fmt.Errorf("invalid output_format: %s", c.OutputFormat)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	if c.Answers.PasswordLength != nil && *c.Answers.PasswordLength <= 0 {
		return fmt.Errorf("invalid answers.password_length: %d", *c.Answers.PasswordLength)
	}

	return nil
}
