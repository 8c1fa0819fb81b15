package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"trace": TRACE, "DEBUG": DEBUG, "": INFO, " info ": INFO,
		"warning": WARN, "Error": ERROR,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogger_ConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerWithOptions("test", Options{ConsoleLevel: WARN, ConsoleOutput: &buf})
	require.NoError(t, err)

	logger.Info("скрыто %d", 1)
	logger.Warn("видно %d", 2)
	logger.Error("ошибка %s", "x")

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "[WARN] [test] видно 2")
	assert.Contains(t, out, "[ERROR] [test] ошибка x")

	buf.Reset()
	logger.SetLevels(DEBUG, DEBUG)
	logger.Debug("теперь видно")
	assert.Contains(t, buf.String(), "теперь видно")
}

func TestLogger_FileSink(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	logger, err := NewLoggerWithOptions("tiles", Options{
		Dir: dir, ConsoleLevel: ERROR, FileLevel: TRACE, ConsoleOutput: &buf,
	})
	require.NoError(t, err)

	logger.Trace("в файл")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close(), "повторное закрытие безопасно")

	files, err := filepath.Glob(filepath.Join(dir, "tiles_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[TRACE] [tiles] в файл")
	assert.Empty(t, buf.String(), "консоль не получает TRACE")
}

func TestDefaultLogger(t *testing.T) {
	// До инициализации пакетные функции ничего не делают
	CloseDefaultLogger()
	Info("никуда")

	var buf bytes.Buffer
	require.NoError(t, InitDefaultLoggerWithOptions("server", Options{ConsoleLevel: DEBUG, ConsoleOutput: &buf}))
	defer CloseDefaultLogger()

	Debug("запуск %s", "сервера")
	assert.True(t, strings.Contains(buf.String(), "[DEBUG] [server] запуск сервера"))
}

func TestLoggerManager(t *testing.T) {
	var buf bytes.Buffer
	lm := NewLoggerManager(Options{ConsoleLevel: INFO, ConsoleOutput: &buf})

	a, err := lm.GetLogger("registry")
	require.NoError(t, err)
	b := lm.MustGetLogger("registry")
	assert.Same(t, a, b)

	lm.MustGetLogger("api")
	assert.Equal(t, []string{"api", "registry"}, lm.ListComponents())

	require.NoError(t, lm.SetLogLevel("api", ERROR, ERROR))
	assert.Error(t, lm.SetLogLevel("missing", ERROR, ERROR))

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}
