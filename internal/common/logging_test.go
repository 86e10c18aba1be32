package common

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/phuslu/log"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/writers"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	logger := NewLogger("info")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNewLogger_FluentAPI(t *testing.T) {
	logger := NewLogger("error")
	logger.Info().Str("key", "value").Msg("test message")
	logger.Warn().Int("count", 42).Msg("warning")
	logger.Error().Err(nil).Msg("error message")
	logger.Debug().Float64("rate", 3.14).Bool("ok", true).Msg("debug")
}

// captureWriter records what reaches a globally registered writer.
type captureWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *captureWriter) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Len()
}

func (w *captureWriter) WithLevel(_ log.Level) writers.IWriter { return w }
func (w *captureWriter) GetFilePath() string                   { return "" }
func (w *captureWriter) Close() error                          { return nil }

func TestNewSilentLogger_DoesNotWriteToGlobalWriters(t *testing.T) {
	capture := &captureWriter{}
	arbor.RegisterWriter(arbor.WRITER_CONSOLE, capture)
	t.Cleanup(func() { NewLogger("info") })

	silent := NewSilentLogger()
	silent.Info().Str("key", "value").Msg("this should NOT appear")
	silent.Error().Msg("this should NOT appear either")

	if capture.Len() > 0 {
		t.Errorf("Silent logger wrote %d bytes to global writer", capture.Len())
	}
}

func TestLoggingConfig_FileWriterDefaults(t *testing.T) {
	cfg := LoggingConfig{}.fileWriter()
	if cfg.FileName != defaultLogFile {
		t.Errorf("expected default file %s, got %s", defaultLogFile, cfg.FileName)
	}
	if cfg.MaxSize != defaultMaxLogSize {
		t.Errorf("expected default max size %d, got %d", defaultMaxLogSize, cfg.MaxSize)
	}
	if cfg.MaxBackups != defaultMaxBackups {
		t.Errorf("expected default backups %d, got %d", defaultMaxBackups, cfg.MaxBackups)
	}

	cfg = LoggingConfig{FilePath: "/var/log/r.log", MaxSizeMB: 2, MaxBackups: 3}.fileWriter()
	if cfg.FileName != "/var/log/r.log" || cfg.MaxSize != 2*1024*1024 || cfg.MaxBackups != 3 {
		t.Errorf("configured values not applied: %+v", cfg)
	}
}

func TestNewLogger_DoesNotWriteToStdout(t *testing.T) {
	// stdout is the MCP JSON-RPC channel in stdio mode.
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	logger := NewLogger("info")
	logger.Info().Str("tool", "get_call").Msg("this must not go to stdout")
	logger.Error().Msg("neither should this")

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	r.Close()

	if buf.Len() > 0 {
		t.Errorf("Logger wrote %d bytes to stdout (would corrupt MCP stdio): %s", buf.Len(), buf.String())
	}
}

func TestWithCorrelationId_ReturnsNewLogger(t *testing.T) {
	logger := NewLogger("info")
	correlated := logger.WithCorrelationId("test-req-123")

	if correlated == nil {
		t.Fatal("WithCorrelationId returned nil")
	}
	if correlated == logger {
		t.Error("WithCorrelationId should return a new Logger instance, not the same one")
	}
}

func TestConcurrentLogging_NoRaceOrPanic(t *testing.T) {
	logger := NewSilentLogger()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.WithCorrelationId("c").Info().Int("n", n).Msg("concurrent")
		}(i)
	}
	wg.Wait()
}
