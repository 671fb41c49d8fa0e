package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Phone string  `validate:"isphone"`
	Start *string `validate:"omitempty,hhmm"`
}

func TestIsValidPhone(t *testing.T) {
	v := NewCustomValidator().Validator

	tests := []struct {
		phone string
		valid bool
	}{
		{"+5511999888777", true},
		{"5511999888777", true},
		{"+55 (11) 99988-8777", true},
		{"12345678", true},
		{"1234567", false},
		{"+1234567890123456", false},
		{"+55abc11999", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := v.Struct(sample{Phone: tt.phone})
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}

func TestIsValidClock(t *testing.T) {
	v := NewCustomValidator().Validator
	clock := func(s string) *string { return &s }

	assert.NoError(t, v.Struct(sample{Phone: "+5511999888777"}))
	assert.NoError(t, v.Struct(sample{Phone: "+5511999888777", Start: clock("09:00")}))
	assert.NoError(t, v.Struct(sample{Phone: "+5511999888777", Start: clock("23:59")}))
	assert.Error(t, v.Struct(sample{Phone: "+5511999888777", Start: clock("24:00")}))
	assert.Error(t, v.Struct(sample{Phone: "+5511999888777", Start: clock("9:00")}))
	assert.Error(t, v.Struct(sample{Phone: "+5511999888777", Start: clock("nine")}))
}
