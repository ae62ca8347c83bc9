// Package logging provides structured logging for taskgate.
//
// It wraps the standard log/slog package so every component logs with a
// consistent shape: JSON output for production, text for development,
// level-based filtering, and default fields (service, version) on every
// entry.
//
// Logging is configured via the logging section of config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Usage:
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("server started", "port", 8080)
//	logger.Error("login failed", "error", err)
//
// Never log secrets, tokens, or password material. Identity claims may be
// logged by subject id only.
package logging
