package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffirmed(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"N", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, affirmed(tt.answer), "answer %q", tt.answer)
	}
}

func TestValidateNonEmpty(t *testing.T) {
	assert.Error(t, ValidateNonEmpty(""))
	assert.NoError(t, ValidateNonEmpty("Portal 2"))
}

func TestValidateDigits(t *testing.T) {
	assert.NoError(t, ValidateDigits("620"))
	assert.Error(t, ValidateDigits(""))
	assert.Error(t, ValidateDigits("62a"))
	assert.Error(t, ValidateDigits("-1"))
}
