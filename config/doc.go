// Package config loads the game client configuration from a YAML file,
// environment variables and an optional .env file, then validates it.
//
// Environment variables use the GAMECLIENT_ prefix with underscores for
// nesting, e.g. GAMECLIENT_API_BASE_URL overrides api.base_url.
package config
