// Package logger builds configured slog loggers and provides a small set of
// attribute helpers used across the application.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("listening", logger.Component("api"), slog.Int("port", 8555))
//
// ParseLevel and ParseFormat map config strings onto slog levels and output
// formats, so the factory can be driven straight from environment values.
package logger
