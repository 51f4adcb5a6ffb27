package strutil

import "testing"

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"simple", "a@b.com", true},
		{"subdomain", "user@mail.example.com", true},
		{"plus tag", "user+tag@example.org", true},
		{"dots and dashes", "first.last@my-host.net", true},
		{"four char tld", "x@example.info", true},
		{"not an email", "not-an-email", false},
		{"missing tld", "a@b", false},
		{"tld too long", "a@b.company", false},
		{"blank", "   ", false},
		{"empty", "", false},
		{"space inside", "a b@c.com", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsEmail(tc.in); got != tc.want {
				t.Errorf("IsEmail(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsMobile(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"china mobile 138", "13812345678", true},
		{"china unicom 186", "18612345678", true},
		{"145 segment", "14512345678", true},
		{"170 segment", "17012345678", true},
		{"154 not allocated", "15412345678", false},
		{"too short", "1381234567", false},
		{"too long", "138123456789", false},
		{"wrong prefix", "12345678901", false},
		{"blank", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMobile(tc.in); got != tc.want {
				t.Errorf("IsMobile(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestContainsChinese(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"pure chinese", "中文", true},
		{"mixed", "hello 世界", true},
		{"ascii only", "hello", false},
		{"japanese kana only", "こんにちは", false},
		{"blank", "  ", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsChinese(tc.in); got != tc.want {
				t.Errorf("ContainsChinese(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"http", "http://example.com", true},
		{"http with path", "http://example.com/a/b?c=d", true},
		{"https rejected", "https://example.com", false},
		{"ftp rejected", "ftp://example.com", false},
		{"relative", "/a/b", false},
		{"bare host", "example.com", false},
		{"blank", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsURL(tc.in); got != tc.want {
				t.Errorf("IsURL(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsCulture(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"en-US", "en-US", true},
		{"zh-Hans", "zh-Hans", true},
		{"plain language", "de", true},
		{"garbage", "not a culture!!", false},
		{"single letter", "a", false},
		{"blank", " ", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCulture(tc.in); got != tc.want {
				t.Errorf("IsCulture(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
