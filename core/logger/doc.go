// Package logger provides a structured logging facility based on Zap.
//
// Logs always go to stderr. The check command prints its report on stdout,
// so the two streams can be redirected independently.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Loaded reference codes", zap.Int("count", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
