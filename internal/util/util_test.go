package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlinkitSearchURL(t *testing.T) {
	tests := []struct {
		name    string
		product string
		want    string
	}{
		{"single word", "tomatoes", "https://www.blinkit.com/search?query=tomatoes"},
		{"spaces become plus", "eco friendly bags", "https://www.blinkit.com/search?query=eco+friendly+bags"},
		{"reserved characters escaped", "ghee & butter", "https://www.blinkit.com/search?query=ghee+%26+butter"},
		{"empty name", "", "https://www.blinkit.com/search?query="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BlinkitSearchURL(tt.product))
		})
	}
}
