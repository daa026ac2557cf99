package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional wirebench.yaml file. Zero values mean
// "not set"; flags and built-in defaults fill the gaps.
type fileConfig struct {
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	Path               string `yaml:"path"`
	MaxConnections     int    `yaml:"max_connections"`
	KeepAliveTimeoutMs int    `yaml:"keep_alive_timeout_ms"`
	Users              int    `yaml:"users"`
	RequestsPerUser    int    `yaml:"requests_per_user"`
	Warmup             int    `yaml:"warmup"`
}

// loadFileConfig reads the yaml config. A missing file is not an error;
// the returned config is simply empty.
func loadFileConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
