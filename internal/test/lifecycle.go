package test

import "go.uber.org/fx"

// LifecycleRecorder collects hooks instead of running them, so tests can
// drive OnStart/OnStop by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called when the app asks to shut down.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown performs a non-blocking notification.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
