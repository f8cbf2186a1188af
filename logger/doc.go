// Package logger provides structured logging for the game client SDK
// using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("gameclient")
//	log.Info("login succeeded", logger.Fields("player_id", 42))
package logger
