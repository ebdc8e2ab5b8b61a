package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"short string", "Cristo", 10, "Cristo"},
		{"exact length", "Cristo", 6, "Cristo"},
		{"long string", "Passeio pelo Pão de Açúcar", 10, "Passeio..."},
		{"unicode safe", "Açúcar Açúcar", 8, "Açúca..."},
		{"tiny max", "Cristo", 2, "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLength))
		})
	}
}
