// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/zigcli/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// StreamLogger is a Logger that renders lines printed by the build tool
// apart from its own messages. Loggers without it get stdout lines as Info
// and stderr lines as Warn.
type StreamLogger interface {
	Logger
	Stream(stream domain.Stream, line string)
}
