// Package validation provides struct tag validation for client configuration.
//
//	type Config struct {
//	    BaseURL string `mapstructure:"base_url" validate:"required,url"`
//	}
//	err := validation.Validate(cfg)
package validation
