package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n\r ", ""},
		{"lowercases", "WIFI Issue", "wifi issue"},
		{"collapses runs", "my   printer\t\twont\nprint", "my printer wont print"},
		{"trims ends", "  bsod on boot \n", "bsod on boot"},
		{"unicode spaces", "no\u00a0internet\u2003here", "no internet here"},
		{"vertical tab and form feed", "no\vinternet\fhere", "no internet here"},
		{"bom inside", "no\ufeffinternet", "no internet"},
		{"next line is not space", "no\u0085internet", "no\u0085internet"},
		{"control is not space", "no\x00internet", "no\x00internet"},
		{"keeps punctuation", "Can't Connect!", "can't connect!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"Hello   World",
		"\tVPN  keeps\n\ndropping  ",
		"Wi‑Fi / No Internet – Quick Checklist",
		"MiXeD  Case",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestContainsAny(t *testing.T) {
	kw, ok := ContainsAny("mywifi is down", []string{"vpn", "wifi"})
	assert.True(t, ok)
	assert.Equal(t, "wifi", kw)

	// Declared order decides which keyword is reported.
	kw, ok = ContainsAny("cisco anyconnect fails", []string{"cisco anyconnect", "anyconnect"})
	assert.True(t, ok)
	assert.Equal(t, "cisco anyconnect", kw)

	kw, ok = ContainsAny("nothing here", []string{"printer"})
	assert.False(t, ok)
	assert.Empty(t, kw)

	_, ok = ContainsAny("", []string{"printer"})
	assert.False(t, ok)

	_, ok = ContainsAny("anything", nil)
	assert.False(t, ok)
}
