package config

import (
	"time"

	"github.com/LambdaTest/coverage-status/pkg/lumber"
)

// Model definition for configuration

// StatusConfig is the application's configuration
type StatusConfig struct {
	Config       string
	CoverageFile string        `json:"coverage-file" validate:"required"`
	Repository   string        `json:"repository" validate:"required,repository"`
	SHA          string        `json:"sha" validate:"required"`
	Target       string        `json:"target" validate:"required,oneof=status check-run"`
	APIURL       string        `json:"api-url" validate:"required,url"`
	Timeout      time.Duration `json:"timeout" validate:"gt=0"`
	DryRun       bool          `json:"dry-run"`
	Logger       string        `json:"logger" validate:"omitempty,oneof=zap logrus"`
	LogFile      string        `json:"log-file"`
	Token        string        `env:"GITHUB_TOKEN"`
	Verbose      bool
	LogConfig    lumber.LoggingConfig
}
