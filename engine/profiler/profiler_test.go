package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLogsOnlyAfterInterval(t *testing.T) {
	p := NewProfiler(nil)
	p.updateInterval = 20 * time.Millisecond

	assert.False(t, p.Tick())

	time.Sleep(25 * time.Millisecond)
	assert.True(t, p.Tick())

	// The window restarts after a report.
	assert.False(t, p.Tick())
}

func TestNewProfilerNilLogger(t *testing.T) {
	p := NewProfiler(nil)
	assert.NotNil(t, p)
	assert.NotNil(t, p.log)
}
