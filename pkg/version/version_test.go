package version_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containertools/dfm/pkg/version"
)

func writeVersion(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "VERSION")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestRead(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"v5.1\n",
		"release/5.1\n",
		"  2024.07.0  \n",
	}
	expected := []string{
		"v5.1",
		"release-5.1",
		"2024.07.0",
	}

	for i, input := range inputs {
		got, err := version.Read(writeVersion(t, input))
		require.NoError(t, err)
		assert.Equal(t, expected[i], got)
	}
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := version.Read(filepath.Join(t.TempDir(), "VERSION"))
	assert.Error(t, err)
}

func TestReadEmptyFile(t *testing.T) {
	t.Parallel()

	_, err := version.Read(writeVersion(t, "\n"))
	assert.Error(t, err)
}
