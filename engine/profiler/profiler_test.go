package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfilerTickWithinInterval(t *testing.T) {
	p := NewProfiler()
	assert.False(t, p.Tick(10, 2))
	assert.False(t, p.Tick(10, 3))
}

func TestProfilerLogsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.lastTime = time.Now().Add(-2 * time.Second)

	assert.True(t, p.Tick(5, 1))

	// counters reset after a report
	assert.False(t, p.Tick(5, 1))
}
