package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Enfermera", true},
		{"fisioterapeuta", true},
		{"Técnico en Radiología", true},
		{"Norte-Sur", true},
		{"Sta. María", true},
		{" Centro ", true},
		{"Zona 5", true},
		{"Zona 1", true},
		{"A", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"Cen\x00tro", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLabel(tt.in))
		})
	}
}
