package systems

import (
	"time"
)

// System is one stage of a simulation tick.
// Systems owned by the same loop run in registration order.
type System interface {
	Name() string
	Update(deltaTime float64) error
}

// Phase defines which loop a system belongs to when loops are paced independently.
type Phase uint8

const (
	// PhaseMotion advances gravity-driven bodies.
	PhaseMotion Phase = iota
	// PhaseTarget advances the autonomous target, cooldowns and hit checks.
	PhaseTarget
)

func (p Phase) String() string {
	switch p {
	case PhaseMotion:
		return "motion"
	case PhaseTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Phased is implemented by systems that declare their loop.
type Phased interface {
	System
	Phase() Phase
}

// Metrics provides runtime metrics for a system or loop.
type Metrics struct {
	ExecutionCount       uint64
	TotalExecutionTime   time.Duration
	AverageExecutionTime time.Duration
	MaxExecutionTime     time.Duration
	MinExecutionTime     time.Duration
	ErrorCount           uint64
	LastError            error
	LastExecutionTime    time.Time
	Overruns             uint64
}

// Observe records one execution that started at start and took d.
// Executions longer than budget count as overruns; a zero budget disables the check.
func (m *Metrics) Observe(start time.Time, d, budget time.Duration, err error) {
	m.ExecutionCount++
	m.TotalExecutionTime += d
	m.AverageExecutionTime = m.TotalExecutionTime / time.Duration(m.ExecutionCount)
	if d > m.MaxExecutionTime {
		m.MaxExecutionTime = d
	}
	if m.MinExecutionTime == 0 || d < m.MinExecutionTime {
		m.MinExecutionTime = d
	}
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
	if budget > 0 && d > budget {
		m.Overruns++
	}
	m.LastExecutionTime = start
}
