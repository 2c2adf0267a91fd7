package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAppdataDir_Override(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "clockr")

	got, err := EnsureAppdataDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.Equal(t, dir, AppdataDir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
