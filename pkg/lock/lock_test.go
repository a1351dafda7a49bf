package lock_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containertools/dfm/pkg/lock"
)

func TestLockUnlock(t *testing.T) {
	t.Parallel()

	l := lock.New(filepath.Join(t.TempDir(), ".dfm.lock"))

	require.NoError(t, l.Lock(context.Background()))
	require.NoError(t, l.Unlock())
}

func TestTryLockHeld(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".dfm.lock")
	first := lock.New(path)
	second := lock.New(path)

	require.NoError(t, first.Lock(context.Background()))

	ok, err := second.TryLock()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.Unlock())

	ok, err = second.TryLock()
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, second.Unlock())
}
