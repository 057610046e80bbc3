// Package config holds shared default locations for converse projects.
package config

// Default project file locations, relative to the project root.
const (
	DefaultConfigPath      = "config.yml"
	DefaultDomainPath      = "domain.yml"
	DefaultEndpointsPath   = "endpoints.yml"
	DefaultCredentialsPath = "credentials.yml"
	DefaultModelsPath      = "models"
	DefaultDataPath        = "data"
	DefaultResultsPath     = "results"
)

// Mandatory top-level keys a pipeline configuration must define.
var (
	MandatoryKeysCore = []string{"policies"}
	MandatoryKeysNLU  = []string{"language", "pipeline"}

	// MandatoryKeys is the union of the core and NLU key sets.
	MandatoryKeys = append(append([]string{}, MandatoryKeysCore...), MandatoryKeysNLU...)
)
