// Package config loads and validates converse CLI configuration.
//
// Settings come from the converse.yaml project file, CONVERSE_ environment
// variables and CLI flags, merged in that order of increasing precedence.
package config

import (
	sharedcfg "github.com/converse-labs/converse/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	ConfigPath      string `koanf:"config"`
	DomainPath      string `koanf:"domain"`
	DataDir         string `koanf:"data_dir"`
	ModelsDir       string `koanf:"models_dir"`
	ResultsDir      string `koanf:"results_dir"`
	EndpointsPath   string `koanf:"endpoints"`
	CredentialsPath string `koanf:"credentials"`
	Verbose         bool   `koanf:"verbose"`
	OutputFormat    string `koanf:"output"`
}

// Default configuration values - paths use shared defaults from internal/config.
const (
	DefaultConfigPath = sharedcfg.DefaultConfigPath
	DefaultDomainPath = sharedcfg.DefaultDomainPath
	DefaultDataDir    = sharedcfg.DefaultDataPath
	DefaultModelsDir  = sharedcfg.DefaultModelsPath
	DefaultResultsDir = sharedcfg.DefaultResultsPath
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
