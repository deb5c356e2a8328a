package whitelist

import (
	"testing"
)

func TestIsWhitelisted(t *testing.T) {
	checker := NewChecker([]string{"Trusted.Example", " other.example "}, nil)

	cases := []struct {
		from string
		want bool
	}{
		{"alice@trusted.example", true},
		{"bob@TRUSTED.EXAMPLE", true},
		{"carol@other.example", true},
		{"dave@evil.example", false},
		{"not-an-address", false},
		{"two@ats@trusted.example", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := checker.IsWhitelisted(tc.from); got != tc.want {
			t.Errorf("IsWhitelisted(%q) = %t, want %t", tc.from, got, tc.want)
		}
	}
}

func TestIsWhitelisted_EmptyList(t *testing.T) {
	checker := NewChecker(nil, nil)
	if checker.IsWhitelisted("anyone@anywhere.example") {
		t.Error("empty whitelist must match nothing")
	}
}
