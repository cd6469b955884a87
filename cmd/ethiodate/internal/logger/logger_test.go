package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rabitt1ove/ethiocal/cmd/ethiodate/internal/config"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.LoggerConfig
		wantErr bool
	}{
		{"json", config.LoggerConfig{Level: "info", Format: "json"}, false},
		{"console", config.LoggerConfig{Level: "debug", Format: "console"}, false},
		{"default output", config.LoggerConfig{Level: "warn"}, false},
		{"bad level", config.LoggerConfig{Level: "loud", Format: "json"}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%+v) error = %v, wantErr = %v", tt.cfg, err, tt.wantErr)
			}
			if l != nil {
				l.WithComponent("test").Info("hello")
			}
		})
	}
}

func TestLogConversion_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ethiodate.log")
	l, err := New(config.LoggerConfig{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	l.WithRequestID("req-1").LogConversion("to_ethiopian", "direct", "2022-9-11", "2015-1-1", nil)
	l.LogConversion("to_ethiopian", "direct", "1582-10-10", "", errors.New("reform gap"))
	_ = l.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log failed: %v", err)
	}
	out := string(b)
	for _, want := range []string{`"msg":"Converted date"`, `"request_id":"req-1"`, `"output":"2015-1-1"`, `"msg":"Conversion failed"`, `"error":"reform gap"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %s, got:\n%s", want, out)
		}
	}
}

func TestNewNop(t *testing.T) {
	t.Parallel()

	l := NewNop()
	l.WithFields("k", "v").LogConversion("to_gregorian", "jdn", "2015-1-1", "2022-9-11", nil)
	if err := l.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
