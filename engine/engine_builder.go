package engine

import (
	"time"

	"github.com/Carmen-Shannon/animate-go/engine/stage"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// The stages and tick callback advance at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - tps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engine) {
		if tps <= 0 {
			tps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / tps)
	}
}

// WithStage registers a stage at the given key during engine construction.
// Stages are stepped in ascending key order during the tick loop.
//
// Parameters:
//   - key: the order key (lower steps first)
//   - s: the Stage to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStage(key int, s stage.Stage) EngineBuilderOption {
	return func(e *engine) {
		e.stages[key] = s
	}
}

// WithTickCallback registers the function called each engine tick during
// engine construction.
//
// Parameters:
//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}
