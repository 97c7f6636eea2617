package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrIndex,
		ErrInvariant,
		ErrColor,
		ErrOp,
		ErrConfig,
		ErrRender,
		ErrServe,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "index error",
			code:       ErrIndex,
			message:    "Strip 3 doesn't exist",
			suggestion: "Strips are numbered 0 to 2",
		},
		{
			name:       "invariant error",
			code:       ErrInvariant,
			message:    "Can't remove the first stop of strip 0",
			suggestion: "Only interior stops can be removed",
		},
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .logogen.yaml",
			suggestion: "Check your configuration file syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .logogen.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check .logogen.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrIndex, "Stop 9 doesn't exist", "Try again"),
			expectedParts: []string{
				"✗",
				"Stop 9 doesn't exist",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrRender, "Encoding failed", ""),
			expectedParts: []string{
				"Encoding failed",
			},
			notExpected: []string{
				"\n\n  \n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("short write")
	wrapped := Wrap(cause, "Failed to write SVG")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrRender, wrapped.Code, "Wrap should default to ErrRender code")
	assert.Equal(t, "Failed to write SVG", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create .logogen.yaml file")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Create .logogen.yaml file", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
	assert.Contains(t, wrapped.Error(), "file not found")
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrServe, "Server error", "")

	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, wrapped.Unwrap())

	var lgErr *Error
	require.True(t, errors.As(fmt.Errorf("outer: %w", wrapped), &lgErr))
	assert.Equal(t, ErrServe, lgErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrInvariant, "Too few stops", "")

	assert.True(t, IsCode(err, ErrInvariant))
	assert.False(t, IsCode(err, ErrIndex))
	assert.False(t, IsCode(errors.New("standard error"), ErrInvariant))
	assert.False(t, IsCode(nil, ErrInvariant))
	assert.True(t, IsCode(fmt.Errorf("wrapped: %w", err), ErrInvariant))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrColor, CodeOf(New(ErrColor, "bad color", "")))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "stop out of range", MessageOf(New(ErrIndex, "stop out of range", "hint")))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
	assert.Equal(t, "", MessageOf(nil))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("yaml: line 3: mapping values are not allowed"),
		ErrConfig,
		"Failed to read config file",
		"Check the file exists and is valid YAML",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "First line should start with failure symbol")
	assert.Contains(t, lines[0], "Failed to read config file")
}

func TestEditErrorCodes_ThroughChains(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		message string
	}{
		{
			name:    "index",
			err:     New(ErrIndex, "Strip 3 doesn't exist", "Strips are numbered 0 to 2."),
			code:    ErrIndex,
			message: "Strip 3 doesn't exist",
		},
		{
			name:    "invariant wrapped by fmt",
			err:     fmt.Errorf("apply remove:0:0: %w", New(ErrInvariant, "Can't remove the first stop of strip 0", "")),
			code:    ErrInvariant,
			message: "Can't remove the first stop of strip 0",
		},
		{
			name:    "color with cause",
			err:     WrapWithCode(errors.New("invalid hex"), ErrColor, `"red" isn't a hex color`, "Use #RGB or #RRGGBB."),
			code:    ErrColor,
			message: `"red" isn't a hex color`,
		},
		{
			name: "outermost code wins",
			err: WrapWithCode(New(ErrColor, "initial[0][1] color 'plum'", ""),
				ErrConfig, "Invalid starting palette", ""),
			code:    ErrConfig,
			message: "Invalid starting palette",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, CodeOf(tt.err))
			assert.Equal(t, tt.message, MessageOf(tt.err))
			assert.True(t, IsCode(tt.err, tt.code))
		})
	}
}

func TestWrap_KeepsInnerCodeReachable(t *testing.T) {
	inner := New(ErrIndex, "Stop 9 doesn't exist in strip 0", "")
	err := Wrap(inner, "Failed to render")

	assert.Equal(t, ErrRender, CodeOf(err))
	var got *Error
	require.True(t, errors.As(err.Unwrap(), &got))
	assert.Equal(t, ErrIndex, got.Code)
}
