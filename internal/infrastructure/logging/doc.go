// Package logging provides structured logging for HomeSim Core.
//
// It wraps log/slog with level parsing, format selection (JSON for
// machines, text for humans) and default fields (service, version) applied
// to every entry. Configuration comes from the logging section of
// config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Usage:
//
//	log := logging.New(cfg.Logging, version)
//	log.Info("roster built", "devices", roster.Len())
//
// All methods are safe for concurrent use.
package logging
