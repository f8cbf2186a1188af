package config

import (
	"github.com/murkdev/gameclient/httpclient"
	"github.com/murkdev/gameclient/logger"
)

// ClientConfig is the full configuration of the game client SDK.
type ClientConfig struct {
	Name        string            `yaml:"name" mapstructure:"name"`
	Environment string            `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Debug       bool              `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config     `yaml:"logging" mapstructure:"logging"`
	API         httpclient.Config `yaml:"api" mapstructure:"api"`
}

// ApplyDefaults applies defaults to all sections.
func (c *ClientConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "gameclient"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.API.ApplyDefaults()
}

// Validate validates all sections.
func (c *ClientConfig) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.API.Validate()
}
