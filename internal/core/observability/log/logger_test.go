package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warning": LevelWarn,
		"ERROR":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLevelRoundTrip(t *testing.T) {
	l := NewNop()
	for _, lvl := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		l.SetLevel(lvl)
		require.Equal(t, lvl, l.GetLevel())
	}
}

func TestToZapFields(t *testing.T) {
	fields := toZapFields(
		Bool("b", true),
		Duration("d", time.Second),
		Float64("f", 1.5),
		Int("i", 3),
		String("s", "x"),
		Error(errors.New("boom")),
		Any("a", []int{1}),
	)
	require.Len(t, fields, 7)
	require.Equal(t, zap.Bool("b", true), fields[0])
	require.Equal(t, zap.Int("i", 3), fields[3])
	require.Equal(t, "error", fields[5].Key)
}

func TestWithKeepsLevel(t *testing.T) {
	l := NewNop()
	l.SetLevel(LevelWarn)
	child := l.With(String("component", "engine"))
	require.Equal(t, LevelWarn, child.GetLevel())
	child.Info("dropped")
}
