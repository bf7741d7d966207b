package config

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
)

// LoadRates returns the default rate table overlaid with the YAML file at
// path. Keys absent from the file keep their default value. An empty path
// returns the defaults.
func LoadRates(path string) (estimation.Rates, error) {
	rates := estimation.DefaultRates()
	if path == "" {
		return rates, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return estimation.Rates{}, errors.Wrapf(err, "reading rates file %q", path)
	}

	return ParseRates(data)
}

// ParseRates overlays the YAML or JSON document data onto the default rates
// and validates the result.
func ParseRates(data []byte) (estimation.Rates, error) {
	rates := estimation.DefaultRates()
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return estimation.Rates{}, errors.Wrap(err, "parsing rates")
	}

	if err := rates.Validate(); err != nil {
		return estimation.Rates{}, errors.Wrap(err, "invalid rates")
	}

	return rates, nil
}
