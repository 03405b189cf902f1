package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		expected string
	}{
		{
			name:     "Valor com milhar e centavos",
			value:    floatPtr(1234.56),
			expected: "R$ 1.234,56",
		},
		{
			name:     "Valor inteiro ganha centavos",
			value:    floatPtr(500),
			expected: "R$ 500,00",
		},
		{
			name:     "Valor nulo formata como zero",
			value:    nil,
			expected: "R$ 0,00",
		},
		{
			name:     "Arredondamento para duas casas",
			value:    floatPtr(10.005),
			expected: "R$ 10,01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.35, RoundWithTwoDecimalPlace(10.345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func floatPtr(f float64) *float64 {
	return &f
}
