package wrapper

import (
	"context"
	"crypto/ed25519"
	"math"
	"strconv"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/nft-cpi/pkg/config"
	"github.com/code-payments/nft-cpi/pkg/config/memory"
)

type typed[T any] interface {
	Get(ctx context.Context) T
	GetSafe(ctx context.Context) (T, error)
	Shutdown()
}

// testLifecycle covers the behaviour shared by every wrapper: defaults,
// overrides, last known values on error and shutdown.
func testLifecycle[T any](t *testing.T, mock *memory.Config, wrapper typed[T], defaultValue, overridenValue T) {
	ctx := context.Background()

	// Return the default value when no override is set
	val, err := wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultValue, val)
	assert.Equal(t, defaultValue, wrapper.Get(ctx))

	// The overriden value is returned when set
	mock.SetValue(overridenValue)
	val, err = wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, overridenValue, val)
	assert.Equal(t, overridenValue, wrapper.Get(ctx))

	// The last observed config value is returned on error
	mock.InduceErrors()
	val, err = wrapper.GetSafe(ctx)
	require.Error(t, err)
	assert.Equal(t, overridenValue, val)
	assert.Equal(t, overridenValue, wrapper.Get(ctx))

	// The default value is returned when the override no longer has a value
	mock.StopInducingErrors()
	mock.ClearValue()
	val, err = wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultValue, val)
	assert.Equal(t, defaultValue, wrapper.Get(ctx))
}

func testShutdown[T any](t *testing.T, wrapper typed[T]) {
	wrapper.Shutdown()
	_, err := wrapper.GetSafe(context.Background())
	assert.Equal(t, config.ErrShutdown, err)
}

func TestBoolConfig(t *testing.T) {
	ctx := context.Background()
	mock := memory.NewConfig(nil)
	wrapper := NewBoolConfig(mock, true)

	testLifecycle[bool](t, mock, wrapper, true, false)

	// Verify conversion from a byte array
	mock.SetValue([]byte(strconv.FormatBool(false)))
	val, err := wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.False(t, val)

	// Invalid byte array value
	mock.SetValue([]byte("cannot convert"))
	val, err = wrapper.GetSafe(ctx)
	require.Error(t, err)
	assert.False(t, val)

	// Return an unsupported source value type
	mock.SetValue("not supported")
	_, err = wrapper.GetSafe(ctx)
	assert.Equal(t, ErrUnsuportedConversion, err)

	testShutdown[bool](t, wrapper)
}

func TestUint64Config(t *testing.T) {
	ctx := context.Background()
	mock := memory.NewConfig(nil)
	wrapper := NewUint64Config(mock, math.MaxUint64)

	testLifecycle[uint64](t, mock, wrapper, math.MaxUint64, 0)

	// Verify conversion from a byte array
	mock.SetValue([]byte("3"))
	val, err := wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, val)

	// Invalid byte array value
	mock.SetValue([]byte("-1"))
	val, err = wrapper.GetSafe(ctx)
	require.Error(t, err)
	assert.EqualValues(t, 3, val)

	// Set the mock to a uint
	mock.SetValue(uint(42))
	val, err = wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 42, val)

	// Return an unsupported source value type
	mock.SetValue("not supported")
	_, err = wrapper.GetSafe(ctx)
	assert.Equal(t, ErrUnsuportedConversion, err)

	testShutdown[uint64](t, wrapper)
}

func TestStringConfig(t *testing.T) {
	ctx := context.Background()
	mock := memory.NewConfig(nil)
	wrapper := NewStringConfig(mock, "default")

	testLifecycle[string](t, mock, wrapper, "default", "override")

	// Verify conversion from a byte array
	mock.SetValue([]byte("bytes"))
	val, err := wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bytes", val)

	// Return an unsupported source value type
	mock.SetValue(1234)
	val, err = wrapper.GetSafe(ctx)
	assert.Equal(t, ErrUnsuportedConversion, err)
	assert.Equal(t, "bytes", val)

	testShutdown[string](t, wrapper)
}

func TestPublicKeyConfig(t *testing.T) {
	ctx := context.Background()

	defaultValue, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	overridenValue, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	mock := memory.NewConfig(nil)
	wrapper := NewPublicKeyConfig(mock, defaultValue)

	testLifecycle[ed25519.PublicKey](t, mock, wrapper, defaultValue, overridenValue)

	// Verify conversion from base58 bytes and strings
	mock.SetValue([]byte(base58.Encode(overridenValue)))
	val, err := wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, overridenValue, val)

	mock.SetValue(base58.Encode(defaultValue))
	val, err = wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultValue, val)

	// Invalid encodings keep the last value
	for _, invalid := range []interface{}{
		"0OIl",
		base58.Encode([]byte{1, 2, 3}),
		ed25519.PublicKey{1, 2, 3},
		1234,
	} {
		mock.SetValue(invalid)
		val, err = wrapper.GetSafe(ctx)
		assert.Error(t, err, "value: %v", invalid)
		assert.Equal(t, defaultValue, val)
	}

	testShutdown[ed25519.PublicKey](t, wrapper)
}
