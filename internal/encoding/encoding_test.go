package encoding

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func TestToJSONIndent(t *testing.T) {
	data, err := ToJSONIndent(sample{Name: "a", Color: "#5b9dff"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"color\": \"#5b9dff\"\n}\n", string(data))
}

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON[sample]([]byte(`{"name":"x","extra":1}`))
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name)

	_, err = ParseJSON[sample]([]byte(`{not json`))
	assert.Error(t, err)
}

func TestDecodeJSON(t *testing.T) {
	got, err := DecodeJSON[sample](strings.NewReader(`{"color":"#fff"}`))
	require.NoError(t, err)
	assert.Equal(t, "#fff", got.Color)
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "clock-settings.json")

	require.NoError(t, WriteFileAtomic(path, []byte("one"), 0600))
	require.NoError(t, WriteFileAtomic(path, []byte("two"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
