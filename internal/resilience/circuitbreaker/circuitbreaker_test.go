package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      1,
		Interval:         10 * time.Second,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	require.NotNil(t, cb)
	assert.Equal(t, "test-circuit", cb.Name())
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.False(t, cb.IsOpen())
}

func TestRun_Success(t *testing.T) {
	cb := New(testConfig())

	got, err := Run(cb, func() (string, error) { return "technology", nil })

	require.NoError(t, err)
	assert.Equal(t, "technology", got)
}

func TestRun_FailureReturnsZeroValue(t *testing.T) {
	cb := New(testConfig())
	boom := errors.New("boom")

	got, err := Run(cb, func() (int, error) { return 42, boom })

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, got)
	assert.False(t, IsRejection(err))
}

func TestCircuitBreaker_TripsAndRecovers(t *testing.T) {
	cb := New(testConfig())
	boom := errors.New("upstream down")

	for i := 0; i < 3; i++ {
		_, _ = Run(cb, func() (string, error) { return "", boom })
	}
	require.True(t, cb.IsOpen())

	calls := 0
	_, err := Run(cb, func() (string, error) {
		calls++
		return "x", nil
	})
	assert.True(t, IsRejection(err))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Zero(t, calls, "open breaker must not invoke the call")

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, cb.State())

	got, err := Run(cb, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_MinRequests(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 2; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errors.New("fail") })
	}

	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestProviderConfigs(t *testing.T) {
	openai := OpenAIAPIConfig()
	claude := ClaudeAPIConfig()

	assert.Equal(t, "openai-api", openai.Name)
	assert.Equal(t, "claude-api", claude.Name)
	assert.Equal(t, 60*time.Second, openai.Timeout)
	assert.Equal(t, 90*time.Second, claude.Timeout)
	assert.Equal(t, uint32(5), claude.MinRequests)
	assert.InDelta(t, 0.6, claude.FailureThreshold, 1e-9)
}
