package util

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testCfg struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	out := testCfg{Name: "zed", Count: 3}
	err := WriteConfig(&out, path, 0644)
	assert.NoError(t, err)

	in := testCfg{}
	err = LoadConfig(&in, path)
	assert.NoError(t, err)
	assert.Equal(t, out, in)
}

func TestLoadConfigMissing(t *testing.T) {
	err := LoadConfig(&testCfg{}, filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	file := OpenLog(path, 0644)
	_, err := file.Write([]byte("hello\n"))
	assert.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestOpenLogFallsBack(t *testing.T) {
	file := OpenLog(filepath.Join(t.TempDir(), "no", "such", "dir", "log"), 0644)

	assert.Equal(t, io.Discard, file)
	CloseLog(file)
}
