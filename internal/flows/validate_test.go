package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example.com ", false},
		{"Name <user@example.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"valid", "Abcdef1!", ""},
		{"valid at max length", "Abcdefghijkl1!xy", ""},
		{"empty", "", noticePasswordTooShort},
		{"seven runes", "Abcde1!", noticePasswordTooShort},
		{"seven multibyte runes", "Ab1!äöü", noticePasswordTooShort},
		{"seventeen runes", "Abcdefghijklm1!xy", noticePasswordTooLong},
		{"no uppercase", "abcdef1!", noticePasswordClasses},
		{"no lowercase", "ABCDEF1!", noticePasswordClasses},
		{"no digit", "Abcdefg!", noticePasswordClasses},
		{"no symbol", "Abcdefg1", noticePasswordClasses},
		{"uncased rune counts as symbol", "Abcdef1め", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}
