package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsightsError_Error(t *testing.T) {
	cause := fmt.Errorf("bad input")

	tests := []struct {
		name string
		err  *InsightsError
		want string
	}{
		{"without cause", ValidationError("unknown format", nil), "[VALIDATION] unknown format"},
		{"with cause", ParseError("invalid timestamp", cause), "[PARSE] invalid timestamp: bad input"},
		{"config", ConfigError("bad stale_days", nil), "[CONFIG] bad stale_days"},
		{"io", IOError("read failed", cause), "[IO] read failed: bad input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("stale issues: %w", ParseError("invalid timestamp", nil))

	assert.True(t, IsType(wrapped, ErrParse))
	assert.False(t, IsType(wrapped, ErrConfig))
	assert.False(t, IsType(nil, ErrParse))
	assert.False(t, IsType(errors.New("plain"), ErrParse))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root")
	assert.ErrorIs(t, IOError("read failed", cause), cause)
}

func TestWithContext(t *testing.T) {
	err := ParseError("invalid timestamp", nil).WithContext("value", "yesterday")
	assert.Equal(t, "yesterday", err.Context["value"])
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"config", ConfigError("x", nil), 2},
		{"validation", ValidationError("x", nil), 2},
		{"parse", ParseError("x", nil), 3},
		{"io", IOError("x", nil), 1},
		{"wrapped parse", fmt.Errorf("summary: %w", ParseError("x", nil)), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
