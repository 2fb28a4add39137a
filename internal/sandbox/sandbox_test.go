package sandbox

import (
	"errors"
	"testing"
)

type fakeEngine struct{ name string }

func (f *fakeEngine) Name() string    { return f.name }
func (f *fakeEngine) Available() bool { return true }

func TestLoaderNotReady(t *testing.T) {
	l := NewLoader(func() (Engine, error) { return &fakeEngine{name: "play"}, nil })

	if _, err := l.Engine(); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady before Init, got %v", err)
	}
	if l.Ready() {
		t.Error("loader should not be ready before Init")
	}
}

func TestLoaderInitOnce(t *testing.T) {
	calls := 0
	l := NewLoader(func() (Engine, error) {
		calls++
		return &fakeEngine{name: "play"}, nil
	})

	if err := l.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := l.Init(); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("load should run once, ran %d times", calls)
	}

	engine, err := l.Engine()
	if err != nil {
		t.Fatalf("engine not available: %v", err)
	}
	if engine.Name() != "play" {
		t.Errorf("unexpected engine %q", engine.Name())
	}
}

func TestLoaderRetriesAfterFailure(t *testing.T) {
	fail := true
	l := NewLoader(func() (Engine, error) {
		if fail {
			return nil, errors.New("script unavailable")
		}
		return &fakeEngine{name: "play"}, nil
	})

	if err := l.Init(); err == nil {
		t.Fatal("expected first init to fail")
	}
	if _, err := l.Engine(); !errors.Is(err, ErrNotReady) {
		t.Errorf("failed init must leave loader not ready, got %v", err)
	}

	fail = false
	if err := l.Init(); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if !l.Ready() {
		t.Error("loader should be ready after successful retry")
	}
}
