package main

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/todokata/todoapi/pkg/todoapi"
)

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "config error",
			err:      &configError{errors.New("invalid base_url")},
			expected: ExitConfigError,
		},
		{
			name:     "network error",
			err:      todoapi.Classify(todoapi.Outcome{Err: io.EOF}, 200),
			expected: ExitNetworkError,
		},
		{
			name:     "server error",
			err:      todoapi.Classify(todoapi.Outcome{StatusCode: 502}, 200),
			expected: ExitNetworkError,
		},
		{
			name:     "item not found",
			err:      todoapi.Classify(todoapi.Outcome{StatusCode: 404}, 200),
			expected: ExitTaskNotFound,
		},
		{
			name:     "wrapped item not found",
			err:      fmt.Errorf("get: %w", todoapi.Classify(todoapi.Outcome{StatusCode: 404}, 200)),
			expected: ExitTaskNotFound,
		},
		{
			name:     "unknown status",
			err:      todoapi.Classify(todoapi.Outcome{StatusCode: 444}, 200),
			expected: ExitUnknownStatus,
		},
		{
			name:     "generic error",
			err:      errors.New("something went wrong"),
			expected: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mapErrorToExitCode(tt.err)
			if result != tt.expected {
				t.Errorf("mapErrorToExitCode() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestMapErrorToExitCode_Decoding(t *testing.T) {
	_, err := todoapi.Decode[todoapi.Task](todoapi.Outcome{StatusCode: 200, Body: []byte("{")}, 200)
	if got := mapErrorToExitCode(err); got != ExitDecodingError {
		t.Errorf("mapErrorToExitCode() = %d, expected %d", got, ExitDecodingError)
	}
}

func TestGetClient_InvalidOverride(t *testing.T) {
	old := baseURL
	baseURL = "ftp://example.com"
	defer func() { baseURL = old }()

	_, err := getClient()
	if got := mapErrorToExitCode(err); got != ExitConfigError {
		t.Errorf("expected config exit code, got %d (%v)", got, err)
	}
}
