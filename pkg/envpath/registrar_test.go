package envpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zov-lang/zov/pkg/errors"
)

func TestEnsureAbsentVariable(t *testing.T) {
	store := &MemoryStore{}
	registrar := NewRegistrar(store)

	written, err := registrar.Ensure(`C:\Program Files\Zov`)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, `C:\Program Files\Zov`, store.Value)
}

func TestEnsureAppendsWithSingleDelimiter(t *testing.T) {
	store := &MemoryStore{Value: "A;B", Exists: true}
	registrar := NewRegistrar(store)

	written, err := registrar.Ensure("C")
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "A;B;C", store.Value)
}

func TestEnsureAlreadyPresentDoesNotWrite(t *testing.T) {
	store := &MemoryStore{Value: `C:\APP;D:\X`, Exists: true}
	registrar := NewRegistrar(store)

	written, err := registrar.Ensure(`c:\app`)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, 0, store.Writes)
}

func TestEnsureIsIdempotentAcrossRuns(t *testing.T) {
	store := &MemoryStore{Value: `C:\Windows`, Exists: true}
	registrar := NewRegistrar(store)

	for i := 0; i < 4; i++ {
		_, err := registrar.Ensure(`C:\Program Files\Zov`)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, store.Writes)
	assert.Equal(t, `C:\Windows;C:\Program Files\Zov`, store.Value)
}

// A store that cannot be read behaves as if the variable were absent:
// appending to nothing is always safe.
func TestEnsureReadFailureFailsOpen(t *testing.T) {
	store := &MemoryStore{
		Value:   `C:\Windows`,
		Exists:  true,
		ReadErr: errors.New(errors.ErrEnvRead, "access is denied"),
	}
	registrar := NewRegistrar(store)

	written, err := registrar.Ensure(`C:\App`)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, `C:\App`, store.Value)
}

func TestEnsureWriteFailure(t *testing.T) {
	store := &MemoryStore{
		Exists:   false,
		WriteErr: errors.New(errors.ErrEnvWrite, "access is denied"),
	}
	registrar := NewRegistrar(store)

	written, err := registrar.Ensure(`C:\App`)
	assert.False(t, written)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvWrite))
}

func TestEnsureEmptyTargetRejected(t *testing.T) {
	registrar := NewRegistrar(&MemoryStore{})

	_, err := registrar.Ensure("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestEnsureRefusesOversizedValue(t *testing.T) {
	store := &MemoryStore{Value: strings.Repeat("A", 32760), Exists: true}
	registrar := NewRegistrar(store)

	_, err := registrar.Ensure(`C:\App`)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvTooLong))
	assert.Equal(t, 0, store.Writes)
}

func TestRemove(t *testing.T) {
	store := &MemoryStore{Value: `A;C:\App;B`, Exists: true}
	registrar := NewRegistrar(store)

	written, err := registrar.Remove(`c:\APP`)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "A;B", store.Value)

	written, err = registrar.Remove(`c:\APP`)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestRemoveAbsentVariable(t *testing.T) {
	registrar := NewRegistrar(&MemoryStore{})

	written, err := registrar.Remove(`C:\App`)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestParseScope(t *testing.T) {
	scope, ok := ParseScope("machine")
	assert.True(t, ok)
	assert.Equal(t, ScopeMachine, scope)

	scope, ok = ParseScope("")
	assert.True(t, ok)
	assert.Equal(t, ScopeUser, scope)

	_, ok = ParseScope("galaxy")
	assert.False(t, ok)
}
