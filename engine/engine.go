package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/animate-go/engine/profiler"
	"github.com/Carmen-Shannon/animate-go/engine/stage"
)

// engine implements the Engine interface.
// Coordinates the tick loop and quit signaling.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	stages map[int]stage.Stage
}

// Engine drives animation over wall-clock time. It owns a fixed-rate tick
// loop that measures the elapsed seconds between ticks and advances every
// registered stage by that delta, in ascending key order, then fires the
// tick callback for host logic that consumes the animated values.
// Stages should be registered before Run or from within the tick callback;
// the tick loop reads the stage map without locking.
type Engine interface {
	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// The stages and tick callback advance at this rate. If the engine is
	// running the change takes effect immediately.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetTickCallback registers the function called each engine tick, after
	// the stages have been stepped. Use this to read animated values and
	// drive host-side state.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddStage registers a stage at the given key.
	// Stages are stepped in ascending key order during the tick loop.
	//
	// Parameters:
	//   - key: the order key (lower steps first)
	//   - s: the Stage to register
	AddStage(key int, s stage.Stage)

	// RemoveStage removes the stage at the given key.
	//
	// Parameters:
	//   - key: the key of the stage to remove
	RemoveStage(key int)

	// Stage retrieves the stage registered at the given key.
	// Returns nil if no stage exists at that key.
	//
	// Parameters:
	//   - key: the key of the stage to retrieve
	//
	// Returns:
	//   - stage.Stage: the stage at the key, or nil if not found
	Stage(key int) stage.Stage

	// Stages returns a copy of all registered stages keyed by order key.
	//
	// Returns:
	//   - map[int]stage.Stage: a copy of the stages map
	Stages() map[int]stage.Stage

	// Run starts the engine tick loop (blocks until Quit).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Initializes the tick rate channel and profiler with sensible defaults.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, stages)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		stages:           make(map[int]stage.Stage),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Steps the stages and fires the tick callback at the configured rate, and
// listens for dynamic rate changes via tickRateChannel. Exits when the quit
// channel is closed. Recovers from panics to avoid crashing the process and
// signals quit on recovery.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// tick advances all stages in ascending key order, then fires the tick
// callback and, when enabled, the profiler.
func (e *engine) tick(dt float32) {
	keys := make([]int, 0, len(e.stages))
	for k := range e.stages {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		e.stages[k].Step(dt)
	}

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		channels, steady := 0, 0
		for _, k := range keys {
			s := e.stages[k]
			channels += s.Count()
			steady += s.SteadyCount()
		}
		e.profiler.Tick(channels, steady)
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(tps float64) {
	if tps <= 0 {
		tps = 60
	}
	newRate := time.Duration(float64(time.Second) / tps)

	if e.running {
		// Send to channel for immediate update in the running tick loop.
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) AddStage(key int, s stage.Stage) {
	e.stages[key] = s
}

func (e *engine) RemoveStage(key int) {
	delete(e.stages, key)
}

func (e *engine) Stage(key int) stage.Stage {
	return e.stages[key]
}

func (e *engine) Stages() map[int]stage.Stage {
	cp := make(map[int]stage.Stage, len(e.stages))
	for k, v := range e.stages {
		cp[k] = v
	}
	return cp
}
