// Package logger provides structured logging for weave using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("weave").WithComponent("interleave")
//	log.Debug("merge complete", logger.Fields(
//	    logger.FieldElements, 42,
//	))
package logger
