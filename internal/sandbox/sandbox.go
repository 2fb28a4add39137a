// Package sandbox holds the handle to the optional free-play rigid-body
// sandbox. The engine itself never simulates continuous time; when a
// lesson offers free play, the host injects an engine here. The loader
// is an explicit dependency with one initialization entry point and an
// explicit not-ready state — there is no module-global lazy loading,
// so separate diagram instances never share hidden state.
package sandbox

import (
	"errors"
	"sync"
)

// ErrNotReady indicates Engine was requested before Init succeeded.
var ErrNotReady = errors.New("sandbox: engine not initialized")

// Engine is the free-play simulation surface the host provides.
type Engine interface {
	Name() string
	Available() bool
}

// LoadFunc produces the engine; typically it wraps the host's script
// or plugin loading.
type LoadFunc func() (Engine, error)

// Loader owns one engine's lifecycle.
type Loader struct {
	mu     sync.Mutex
	load   LoadFunc
	engine Engine
	loaded bool
}

func NewLoader(load LoadFunc) *Loader {
	return &Loader{load: load}
}

// Init loads the engine. Calling it again after success is a no-op;
// after a failure it retries.
func (l *Loader) Init() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return nil
	}
	engine, err := l.load()
	if err != nil {
		return err
	}
	l.engine = engine
	l.loaded = true
	return nil
}

// Engine returns the loaded engine, or ErrNotReady before Init.
func (l *Loader) Engine() (Engine, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.loaded {
		return nil, ErrNotReady
	}
	return l.engine, nil
}

// Ready reports whether Init has succeeded.
func (l *Loader) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
