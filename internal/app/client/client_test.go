package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingate/internal/app/crypto"
	"pingate/internal/domain/pin"
	"pingate/internal/infrastructure/storage/memory"
	"pingate/internal/utils/logger"
)

type scriptedReader struct {
	inputs []string
	calls  int
}

func (r *scriptedReader) ReadPin(string) (string, error) {
	if r.calls >= len(r.inputs) {
		return "", io.EOF
	}
	r.calls++
	return r.inputs[r.calls-1], nil
}

type failingStore struct {
	*memory.Storage
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("read-only")
}

func newTestApp(t *testing.T, store pin.Store, maxAttempts int, inputs ...string) (*App, *scriptedReader, *bytes.Buffer) {
	t.Helper()
	hasher, err := crypto.NewHasher(crypto.AlgorithmPlain)
	require.NoError(t, err)

	gate := pin.NewGate(store, hasher, pin.NewDigitsValidator(),
		pin.Options{Fallback: pin.DefaultFallback}, logger.Discard())
	reader := &scriptedReader{inputs: inputs}
	out := &bytes.Buffer{}

	return New(gate, reader, out, maxAttempts, logger.Discard()), reader, out
}

func lockedStore(t *testing.T, value string) *memory.Storage {
	t.Helper()
	s := memory.New()
	require.NoError(t, s.Set(context.Background(), pin.DefaultKey, value))
	return s
}

func TestApp_Unlock_NoPinSkipsPrompt(t *testing.T) {
	app, reader, _ := newTestApp(t, memory.New(), 3)

	state, err := app.Unlock(context.Background())
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
	assert.Equal(t, 0, reader.calls)
}

func TestApp_Unlock_RetriesUntilCorrect(t *testing.T) {
	app, reader, out := newTestApp(t, lockedStore(t, "999999"), 0, "12", "999998", "999999")

	state, err := app.Unlock(context.Background())
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
	assert.Equal(t, 3, reader.calls)
	assert.Contains(t, out.String(), "PIN должен содержать от 6 до 20 символов")
	assert.Contains(t, out.String(), "Неверный PIN")
}

func TestApp_Unlock_AttemptLimit(t *testing.T) {
	app, reader, _ := newTestApp(t, lockedStore(t, "999999"), 2, "000000", "111111", "999999")

	state, err := app.Unlock(context.Background())
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.True(t, state.Locked())
	assert.Equal(t, 2, reader.calls)
}

func TestApp_Unlock_ReaderError(t *testing.T) {
	app, _, _ := newTestApp(t, lockedStore(t, "999999"), 0)

	_, err := app.Unlock(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestApp_Unlock_CanceledContext(t *testing.T) {
	app, _, _ := newTestApp(t, lockedStore(t, "999999"), 0, "999999")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := app.Unlock(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_SetPin(t *testing.T) {
	store := memory.New()
	app, _, out := newTestApp(t, store, 3, "123456", "654321", "123456", "123456")

	app.Status(context.Background())
	state, err := app.SetPin(context.Background())
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
	assert.True(t, state.PinRecordExists)
	assert.Contains(t, out.String(), "PIN-коды не совпадают")

	stored, err := store.Get(context.Background(), pin.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "123456", stored)
}

func TestApp_SetPin_Locked(t *testing.T) {
	app, reader, _ := newTestApp(t, lockedStore(t, "999999"), 3)

	app.Status(context.Background())
	_, err := app.SetPin(context.Background())
	assert.True(t, pin.IsAuth(err, pin.ReasonLocked))
	assert.Equal(t, 0, reader.calls)
}

func TestApp_SetPin_StorageFailure(t *testing.T) {
	app, _, _ := newTestApp(t, failingStore{memory.New()}, 3, "123456", "123456")

	app.Status(context.Background())
	_, err := app.SetPin(context.Background())
	assert.ErrorIs(t, err, pin.ErrStorageUnavailable)
}

func TestApp_ChangePin(t *testing.T) {
	store := lockedStore(t, "999999")
	app, _, _ := newTestApp(t, store, 3, "999999", "24681357", "24681357")

	state, err := app.ChangePin(context.Background())
	require.NoError(t, err)
	assert.True(t, state.Authenticated)

	stored, err := store.Get(context.Background(), pin.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "24681357", stored)
}
