package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNumberFormatter(t *testing.T) {
	f := NewNumberFormatter(language.English, "$")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"money grouped", f.Money(1234567.4), "$1,234,567"},
		{"money rounds", f.Money(999.6), "$1,000"},
		{"money zero", f.Money(0), "$0"},
		{"money small", f.Money(42), "$42"},
		{"count grouped", f.Count(1234), "1,234"},
		{"count small", f.Count(7), "7"},
		{"count zero", f.Count(0), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestNumberFormatter_Prefix(t *testing.T) {
	assert.Equal(t, "Rp12,500", NewNumberFormatter(language.English, "Rp").Money(12500))
	assert.Equal(t, "12,500", NewNumberFormatter(language.English, "").Money(12500))
}
