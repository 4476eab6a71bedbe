package logging

import (
	"sync"

	"github.com/pharoslog/pharos/config"
)

// Registry manages named loggers and their configurations so that
// repeated lookups of the same name share one logger.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	configs map[string]*config.Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		loggers: make(map[string]*Logger),
		configs: make(map[string]*config.Config),
	}
}

// Get returns the logger registered under name, building it from cfg on
// first use. A nil cfg uses config.Default() with the given name. The
// config is only applied when the logger is first built.
func (r *Registry) Get(name string, cfg *config.Config) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if logger, ok := r.loggers[name]; ok {
		return logger, nil
	}

	if cfg == nil {
		cfg = config.Default()
		cfg.Name = name
	}

	logger, err := New(cfg)
	if err != nil {
		return nil, err
	}

	r.loggers[name] = logger
	r.configs[name] = cfg
	return logger, nil
}

// Remove drops the logger registered under name. The next Get rebuilds
// it.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.loggers, name)
	delete(r.configs, name)
}

// Loggers returns a copy of the registered loggers by name.
func (r *Registry) Loggers() map[string]*Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]*Logger, len(r.loggers))
	for name, logger := range r.loggers {
		out[name] = logger
	}
	return out
}

// Clear drops every registered logger.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loggers = make(map[string]*Logger)
	r.configs = make(map[string]*config.Config)
}

var globalRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return globalRegistry
}
