package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *ServiceConfig
}

type ServiceConfig struct {
	Address        string   `envconfig:"VDI_PLANNER_ADDRESS" default:":3443"`
	MetricsAddress string   `envconfig:"VDI_PLANNER_METRICS_ADDRESS" default:":8080"`
	LogLevel       string   `envconfig:"VDI_PLANNER_LOG_LEVEL" default:"info"`
	LogFormat      string   `envconfig:"VDI_PLANNER_LOG_FORMAT" default:"console"`
	RatesFile      string   `envconfig:"VDI_PLANNER_RATES_FILE" default:""`
	CORSOrigins    []string `envconfig:"VDI_PLANNER_CORS_ORIGINS" default:"*"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		cfg, err := load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

func load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
