package stage

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/animate-go/common"
)

// defaultParallelMin is the registry size at which Step switches from the
// serial loop to the worker-pool fan-out.
const defaultParallelMin = 64

// Stepper is the contract a stage requires of its channels: advance by a
// delta and report whether future steps can still change the output. Both
// animate.Animate and animate.Sequence satisfy it through their pointer
// receivers.
type Stepper interface {
	// Step advances the channel by dt seconds.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous Step
	Step(dt float32)

	// Steady reports whether the channel has reached a terminal value.
	//
	// Returns:
	//   - bool: true once stepping can no longer change the output
	Steady() bool
}

// Stage manages a registry of animation channels (registered via Add) and
// advances them together once per tick. Large registries fan the work out
// across a bounded worker pool; each channel is still stepped by exactly one
// goroutine per tick, so the per-channel contract holds.
// Stages can be layered on an engine under integer keys to group channels
// that tick together. Thread-safe for concurrent access.
type Stage interface {
	// Name returns the stage's identifier.
	Name() string

	// SetName sets the stage's identifier.
	SetName(name string)

	// Add registers a channel with the stage and assigns it an ID.
	//
	// Panics if the channel is nil.
	//
	// Parameters:
	//   - st: the channel to register
	//
	// Returns:
	//   - uint64: the assigned channel ID
	Add(st Stepper) uint64

	// Get retrieves a registered channel by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the channel's unique ID
	//
	// Returns:
	//   - Stepper: the channel or nil
	Get(id uint64) Stepper

	// Remove removes a channel from the registry by ID.
	//
	// Parameters:
	//   - id: the channel's unique ID
	Remove(id uint64)

	// Count returns the number of registered channels.
	//
	// Returns:
	//   - int: the registry size
	Count() int

	// SteadyCount returns the number of registered channels that report
	// steady. It is a gauge for load monitoring; Prune removes them.
	//
	// Returns:
	//   - int: count of steady channels
	SteadyCount() int

	// Step advances every registered channel by dt seconds. Must be called
	// once per tick by a single driver; concurrent Add, Remove and Get
	// calls are serialized against it.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous Step
	Step(dt float32)

	// Prune removes every channel that reports steady, compacting the
	// registry between ticks.
	//
	// Returns:
	//   - int: the number of channels removed
	Prune() int

	// Clear removes all channels from the registry.
	Clear()
}

type stage struct {
	mu *sync.RWMutex

	name string

	registry map[uint64]Stepper
	nextID   uint64

	parallelMin int

	// scratch is reused each tick to snapshot the registry for chunking,
	// avoiding per-tick allocations.
	scratch []Stepper

	// stepPool manages a bounded set of reusable goroutines for the parallel
	// fan-out in Step. Workers persist across ticks, avoiding per-tick
	// goroutine spawn/teardown overhead.
	stepPool    worker.DynamicWorkerPool
	stepWorkers int // stored so we can log/inspect the configured count
}

var _ Stage = &stage{}

// NewStage creates a new stage with the provided options.
//
// Parameters:
//   - name: the name of the stage (defaults to "stage" if empty)
//   - options: functional options to further configure the stage
//
// Returns:
//   - Stage: the newly created stage
func NewStage(name string, options ...StageBuilderOption) Stage {
	s := &stage{
		mu:          &sync.RWMutex{},
		name:        common.Coalesce(name, "stage"),
		registry:    make(map[uint64]Stepper),
		nextID:      1,
		parallelMin: defaultParallelMin,
		stepWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the step pool after options so WithStepWorkers can override the default.
	// Queue size of 256 bounds how many chunks a single Step may submit.
	s.stepPool = worker.NewDynamicWorkerPool(s.stepWorkers, 256, 1*time.Second)

	return s
}

func (s *stage) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *stage) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *stage) Add(st Stepper) uint64 {
	if st == nil {
		panic("stage: Add requires a non-nil Stepper")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.registry[id] = st
	return id
}

func (s *stage) Get(id uint64) Stepper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *stage) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *stage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *stage) SteadyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, st := range s.registry {
		if st.Steady() {
			count++
		}
	}
	return count
}

func (s *stage) Step(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.registry)
	if n == 0 {
		return
	}

	// Below the threshold the scheduling overhead outweighs the parallelism,
	// so small registries step serially.
	if n < s.parallelMin || s.stepWorkers < 2 {
		for _, st := range s.registry {
			st.Step(dt)
		}
		return
	}

	// Snapshot the registry so chunks cover stable, contiguous ranges.
	steppers := s.scratch[:0]
	for _, st := range s.registry {
		steppers = append(steppers, st)
	}
	s.scratch = steppers

	// Chunk the snapshot so the task count stays at or below the worker
	// count, which also keeps it inside the pool's queue bound.
	chunk := (n + s.stepWorkers - 1) / s.stepWorkers
	if minChunk := (n + 255) / 256; chunk < minChunk {
		chunk = minChunk
	}

	// A WaitGroup provides the per-tick barrier since pool.Wait() blocks
	// until workers idle-exit, which is unsuitable for tick-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < n; start += chunk {
		span := steppers[start:min(start+chunk, n)] // capture for closure
		id := taskID
		taskID++

		wg.Add(1)
		s.stepPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for _, st := range span {
					st.Step(dt)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Drop snapshot references so removed channels can be collected.
	clear(s.scratch)
}

func (s *stage) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, st := range s.registry {
		if st.Steady() {
			delete(s.registry, id)
			removed++
		}
	}
	return removed
}

func (s *stage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]Stepper)
}
