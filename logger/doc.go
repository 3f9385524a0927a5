// Package logger provides structured logging for scopekit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers:
//
//	log := logger.WithComponent("di")
//	log.Info("container built", logger.Fields("container", "singleton"))
package logger
