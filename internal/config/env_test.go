package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("AD_TEST_STRING", "hello")
	if got := GetEnv("AD_TEST_STRING", "x"); got != "hello" {
		t.Errorf("GetEnv = %q, want hello", got)
	}
	if got := GetEnv("AD_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv fallback = %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("AD_TEST_INT", "42")
	if got := GetEnvInt("AD_TEST_INT", 0); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	t.Setenv("AD_TEST_BAD", "nope")
	if got := GetEnvInt("AD_TEST_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt on malformed value = %d, want fallback 7", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("AD_TEST_DUR", "250ms")
	if got := GetEnvDuration("AD_TEST_DUR", time.Second); got != 250*time.Millisecond {
		t.Errorf("GetEnvDuration = %v, want 250ms", got)
	}
	if got := GetEnvDuration("AD_TEST_DUR_MISSING", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration fallback = %v", got)
	}
}
