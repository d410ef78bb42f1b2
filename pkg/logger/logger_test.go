package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-linear/pkg/settings"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(settings.Logger{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linear.log")
	log, err := New(settings.Logger{LogLevel: "info", FileLogName: path})
	require.NoError(t, err)

	log.Info("collection created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "collection created")
	assert.Contains(t, string(data), `"level":"INFO"`)
}

func TestNewRotator_Defaults(t *testing.T) {
	r := newRotator(settings.Logger{FileLogName: "x.log"})
	assert.Equal(t, defaultMaxSize, r.MaxSize)
	assert.Equal(t, defaultMaxBackups, r.MaxBackups)
	assert.Equal(t, defaultMaxAge, r.MaxAge)

	r = newRotator(settings.Logger{FileLogName: "x.log", MaxSize: 1, MaxBackups: 2, MaxAge: 3, Compress: true})
	assert.Equal(t, 1, r.MaxSize)
	assert.Equal(t, 2, r.MaxBackups)
	assert.Equal(t, 3, r.MaxAge)
	assert.True(t, r.Compress)
}
