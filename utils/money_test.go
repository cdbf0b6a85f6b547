package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{2499, "$24.99"},
		{4998, "$49.98"},
		{100000, "$1,000.00"},
		{123456789, "$1,234,567.89"},
		{-1999, "-$19.99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.cents), "cents=%d", tt.cents)
	}
}

func TestFormatWholeUSD(t *testing.T) {
	assert.Equal(t, "$32,500", FormatWholeUSD(32500))
	assert.Equal(t, "$900", FormatWholeUSD(900))
}
