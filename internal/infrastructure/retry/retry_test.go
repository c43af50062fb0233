package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastConfig keeps tests quick.
var fastConfig = Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2.0,
	JitterFactor: 0,
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("always failing")
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return sentinel
	}, fastConfig)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	cfg := fastConfig
	cfg.RetryIf = SkipPermanent

	underlying := errors.New("bad credentials")
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return NewPermanent(underlying)
	}, cfg)

	assert.ErrorIs(t, err, underlying)
	assert.Equal(t, 1, calls, "permanent errors must not be retried")
}

func TestDo_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, func() error {
		calls++
		return errors.New("transient")
	}, fastConfig)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	calls := 0
	got, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)
}

func TestDoWithResult_ZeroMaxAttemptsRunsOnce(t *testing.T) {
	cfg := fastConfig
	cfg.MaxAttempts = 0

	calls := 0
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, errors.New("nope")
	}, cfg)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestPermanent_Unwrap(t *testing.T) {
	underlying := errors.New("root cause")
	err := NewPermanent(underlying)

	assert.True(t, IsPermanent(err))
	assert.ErrorIs(t, err, underlying)
	assert.Equal(t, "root cause", err.Error())
}

func TestNewPermanent_NilError(t *testing.T) {
	assert.NoError(t, NewPermanent(nil))
}

func TestSkipPermanent(t *testing.T) {
	assert.True(t, SkipPermanent(errors.New("transient")))
	assert.False(t, SkipPermanent(NewPermanent(errors.New("fatal"))))
}
