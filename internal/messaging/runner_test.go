package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"openpay-gateway/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorker struct {
	startErr error
	panics   bool
	closed   bool
}

func (w *fakeWorker) Start(ctx context.Context, _ MessageHandler) error {
	if w.panics {
		panic("boom")
	}
	if w.startErr != nil {
		return w.startErr
	}
	<-ctx.Done()
	return nil
}

func (w *fakeWorker) Close() error {
	w.closed = true
	return nil
}

func noopHandler(context.Context, []byte, []byte) error { return nil }

func TestRunner_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	worker := &fakeWorker{}
	runner := NewRunner(logger.New("error"), noopHandler, worker)

	require.NoError(t, runner.Start(ctx))
	assert.True(t, worker.closed)
}

func TestRunner_PropagatesWorkerError(t *testing.T) {
	t.Parallel()

	broken := errors.New("broker unreachable")
	failing := &fakeWorker{startErr: broken}
	healthy := &fakeWorker{}
	runner := NewRunner(logger.New("error"), noopHandler, failing, healthy)

	err := runner.Start(context.Background())

	// the group context cancels the healthy worker too
	require.ErrorIs(t, err, broken)
	assert.True(t, failing.closed)
	assert.True(t, healthy.closed)
}

func TestRunner_RecoversWorkerPanic(t *testing.T) {
	t.Parallel()

	worker := &fakeWorker{panics: true}
	runner := NewRunner(logger.New("error"), noopHandler, worker)

	// the panic is swallowed by the supervisor, so the run ends cleanly
	require.NoError(t, runner.Start(context.Background()))
	assert.True(t, worker.closed)
}
