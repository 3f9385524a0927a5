package di

import (
	"github.com/kbukum/scopekit/logger"
)

// Option configures a container when it is built.
type Option func(*options)

type options struct {
	log      *logger.Logger
	observer Observer
	values   []attachment
}

type attachment struct {
	key   Key
	value any
}

// WithLogger sets the logger used for container events. Children inherit
// their parent's logger unless they set their own.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithObserver registers an observer for resolutions and constructions.
// Children inherit their parent's observer unless they set their own.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithContextValue attaches value to the context binding key as soon as the
// container is built. It fails the build the same way Attach would.
func WithContextValue(key Key, value any) Option {
	return func(o *options) {
		o.values = append(o.values, attachment{key: key, value: value})
	}
}
