package recstore

import "go.uber.org/zap"

type Option func(*Engine)

// WithLogger sets the logger used for insert and delete events. The default
// discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
