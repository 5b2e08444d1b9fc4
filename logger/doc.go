// Package logger provides structured logging built on Uber's zap.
//
// It is the sink the interceptor package writes call traces to: every traced
// type gets a child logger via Named, so entries can be filtered by the
// declaring type of the method that produced them.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: Defines the contract for logging operations
//   - LoggerClient struct: Concrete implementation of the Logger interface
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FXModule: Provides both *LoggerClient and Logger interface for dependency injection
//
// Core Features:
//   - Structured logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warning, Error, Fatal)
//   - Scoped child loggers through Named
//   - JSON or console output with ISO8601 timestamps
//   - Output directed to stderr, optionally mirrored to a rotating file
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "my-service",
//	})
//
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//	})
//
//	log.Named("bank.Account").Info("balance checked", nil)
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Supply(logger.Config{Level: logger.Info, ServiceName: "my-service"}),
//		fx.Invoke(func(log logger.Logger) {
//			log.Info("Service started", nil)
//		}),
//	)
//	app.Run()
//
// # File Rotation
//
// Setting Config.File.Path mirrors entries into a file rotated by
// gopkg.in/natefinch/lumberjack.v2:
//
//	logger.Config{
//		Level: logger.Info,
//		File: logger.FileConfig{
//			Path:       "/var/log/app/trace.log",
//			MaxSizeMB:  50,
//			MaxBackups: 3,
//			Compress:   true,
//		},
//	}
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by multiple
// goroutines.
package logger
