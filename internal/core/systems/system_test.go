package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsObserve(t *testing.T) {
	var m Metrics
	start := time.Unix(100, 0)

	m.Observe(start, 4*time.Millisecond, 16*time.Millisecond, nil)
	m.Observe(start.Add(time.Second), 20*time.Millisecond, 16*time.Millisecond, errors.New("boom"))

	require.Equal(t, uint64(2), m.ExecutionCount)
	require.Equal(t, 12*time.Millisecond, m.AverageExecutionTime)
	require.Equal(t, 20*time.Millisecond, m.MaxExecutionTime)
	require.Equal(t, 4*time.Millisecond, m.MinExecutionTime)
	require.Equal(t, uint64(1), m.ErrorCount)
	require.EqualError(t, m.LastError, "boom")
	require.Equal(t, uint64(1), m.Overruns)
	require.Equal(t, start.Add(time.Second), m.LastExecutionTime)
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "motion", PhaseMotion.String())
	require.Equal(t, "target", PhaseTarget.String())
	require.Equal(t, "unknown", Phase(9).String())
}
