package main

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	log, err := newLogger("debug")
	if err != nil {
		t.Fatalf("newLogger(debug): %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	log, err = newLogger("warn")
	if err != nil {
		t.Fatalf("newLogger(warn): %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info level should be disabled at warn")
	}

	if _, err := newLogger("loud"); err == nil {
		t.Error("newLogger(loud) should fail")
	}
}
