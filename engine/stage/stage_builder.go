package stage

// StageBuilderOption is a functional option for configuring a Stage.
// Use the With* functions to create options.
type StageBuilderOption func(s *stage)

// WithStepWorkers sets the number of worker goroutines used during the
// parallel fan-out in Step. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput with very large registries; lower
// values reduce scheduling overhead for modest ones.
//
// Parameters:
//   - n: the number of step workers (minimum 1)
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithStepWorkers(n int) StageBuilderOption {
	return func(s *stage) {
		if n < 1 {
			n = 1
		}
		s.stepWorkers = n
	}
}

// WithParallelThreshold sets the registry size at which Step switches from
// the serial loop to the worker-pool fan-out. Defaults to 64.
//
// Parameters:
//   - n: the minimum registry size for the parallel path (minimum 1)
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithParallelThreshold(n int) StageBuilderOption {
	return func(s *stage) {
		if n < 1 {
			n = 1
		}
		s.parallelMin = n
	}
}

// WithSteppers registers initial channels with the stage during construction.
// Each channel is assigned an ID, in argument order.
//
// Parameters:
//   - steppers: the channels to register
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithSteppers(steppers ...Stepper) StageBuilderOption {
	return func(s *stage) {
		for _, st := range steppers {
			if st == nil {
				continue
			}
			s.registry[s.nextID] = st
			s.nextID++
		}
	}
}
