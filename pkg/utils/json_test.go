package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name:     "Struct",
			input:    struct{ PageID string `json:"page_id"` }{PageID: "p1"},
			expected: "{\n  \"page_id\": \"p1\"\n}",
		},
		{
			name:     "Bytes já codificados",
			input:    []byte(`{"total":2}`),
			expected: "{\n  \"total\": 2\n}",
		},
		{
			name:     "Bytes inválidos voltam como texto",
			input:    []byte(`nao-json`),
			expected: "nao-json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrettyJson(tt.input))
		})
	}
}
