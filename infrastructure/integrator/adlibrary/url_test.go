package adlibrary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageIDFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "URL com view_all_page_id",
			url:      "https://www.facebook.com/ads/library/?active_status=all&view_all_page_id=123456",
			expected: "123456",
		},
		{
			name:     "URL sem o parâmetro",
			url:      "https://www.facebook.com/ads/library/?q=shoes",
			expected: "",
		},
		{
			name:     "URL inválida",
			url:      "://invalid",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageIDFromURL(tt.url))
		})
	}
}

func TestPageURL(t *testing.T) {
	u := PageURL("", "987")
	assert.Equal(t, "987", PageIDFromURL(u))
	assert.Contains(t, u, DefaultBaseURL+"?")

	custom := PageURL("http://localhost:8080/library?lang=pt", "42")
	assert.Contains(t, custom, "lang=pt&")
	assert.Equal(t, "42", PageIDFromURL(custom))
}
