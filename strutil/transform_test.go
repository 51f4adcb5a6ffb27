package strutil

import (
	"testing"
	"unicode/utf8"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "abc", "cba"},
		{"single rune", "a", "a"},
		{"multibyte rune", "ab€", "€ba"},
		{"chinese", "中文", "文中"},
		{"blank", "  ", ""},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Reverse(tc.in); got != tc.want {
				t.Errorf("Reverse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestReverseInvolution(t *testing.T) {
	for _, s := range []string{"abc", "hello world", "a1b2c3"} {
		if got := Reverse(Reverse(s)); got != s {
			t.Errorf("Reverse(Reverse(%q)) = %q", s, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		length int
		want   string
	}{
		{"short input unchanged", "abc", 5, "abc"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"truncated", "hello world", 5, "hello ..."},
		{"empty", "", 3, ""},
		{"zero length", "abc", 0, " ..."},
		{"multibyte counted as one", "中文字符串", 2, "中文 ..."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.length); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.length, got, tc.want)
			}
		})
	}
}

func TestTruncateCustomSuffix(t *testing.T) {
	if got := Truncate("hello world", 5, "…"); got != "hello…" {
		t.Errorf("Truncate with custom suffix = %q", got)
	}
	if got := Truncate("hello world", 5, ""); got != "hello" {
		t.Errorf("Truncate with empty suffix = %q", got)
	}
}

func TestTruncateNegativeLength(t *testing.T) {
	if got := Truncate("abc", -3); got != " ..." {
		t.Errorf("Truncate(\"abc\", -3) = %q, want the bare suffix", got)
	}
	if got := Truncate("", -3); got != "" {
		t.Errorf("Truncate(\"\", -3) = %q, want empty", got)
	}
}

func TestTruncateLengthBound(t *testing.T) {
	const suffix = " ..."
	for _, s := range []string{"", "short", "a considerably longer input string"} {
		got := Truncate(s, 8)
		if n := utf8.RuneCountInString(got); n > 8+utf8.RuneCountInString(suffix) {
			t.Errorf("Truncate(%q, 8) produced %d runes: %q", s, n, got)
		}
	}
}

func TestFirstCharToUpper(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single char", "a", "A"},
		{"word", "abc", "Abc"},
		{"already upper", "Abc", "Abc"},
		{"rest untouched", "aBC", "ABC"},
		{"non letter first", "1abc", "1abc"},
		{"multibyte first", "über", "Über"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FirstCharToUpper(tc.in); got != tc.want {
				t.Errorf("FirstCharToUpper(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestReplaceSpecialChars(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		replacement rune
		want        string
	}{
		{"substitute", "a-b_c", '_', "a_b_c"},
		{"delete sentinel", "a-b_c", 0, "abc"},
		{"keeps alphanumerics", "abc123", '*', "abc123"},
		{"spaces substituted", "a b", '-', "a-b"},
		{"unicode letters kept", "中a文b", 0, "中a文b"},
		{"empty", "", '-', ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReplaceSpecialChars(tc.in, tc.replacement); got != tc.want {
				t.Errorf("ReplaceSpecialChars(%q, %q) = %q, want %q", tc.in, tc.replacement, got, tc.want)
			}
		})
	}
}

func TestReplaceSpecialCharsDefault(t *testing.T) {
	// With no replacement argument, special characters are deleted.
	if got := ReplaceSpecialChars("a-b_c"); got != "abc" {
		t.Errorf("ReplaceSpecialChars(\"a-b_c\") = %q, want %q", got, "abc")
	}
	if got := ReplaceSpecialChars("a.b!c中?"); got != "abc中" {
		t.Errorf("ReplaceSpecialChars default = %q, want %q", got, "abc中")
	}
}

func TestMask(t *testing.T) {
	if got := Mask("supersecret", 4); got != "supe***" {
		t.Errorf("Mask = %q, want %q", got, "supe***")
	}
	if got := Mask("abc", 4); got != "***" {
		t.Errorf("short input should be fully masked, got %q", got)
	}
	if got := Mask("abc", -1); got != "***" {
		t.Errorf("negative prefix should fully mask, got %q", got)
	}
}
