package logger

import (
	"sync"
)

// named holds component loggers registered by name.
var named sync.Map // map[string]*Logger

// Register stores a named logger, replacing any previous one.
func Register(name string, l *Logger) {
	named.Store(name, l)
}

// Get retrieves a named logger. Unregistered names get the global logger
// tagged with the requested component name.
func Get(name string) *Logger {
	if l, ok := named.Load(name); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(name)
}

// Reset drops every registered named logger.
func Reset() {
	named.Range(func(k, _ any) bool {
		named.Delete(k)
		return true
	})
}
