package strutil

import (
	"net/url"
	"regexp"

	"golang.org/x/text/language"
)

var (
	// emailRegex accepts a plus-addressable local part and a dotted
	// domain with a 2-4 character top level.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_+.-]+@([a-zA-Z0-9-]+\.)+[a-zA-Z0-9]{2,4}$`)
	// mobileRegex covers the mainland China mobile numbering plan.
	mobileRegex = regexp.MustCompile(`^1(3[0-9]|4[57]|5[0-35-9]|7[0678]|8[0-9])\d{8}$`)
)

// IsEmail reports whether s looks like an email address. Blank input
// is never an email.
func IsEmail(s string) bool {
	if IsBlank(s) {
		return false
	}
	return emailRegex.MatchString(s)
}

// IsMobile reports whether s is a mainland China mobile number.
func IsMobile(s string) bool {
	if IsBlank(s) {
		return false
	}
	return mobileRegex.MatchString(s)
}

// ContainsChinese reports whether any rune of s falls in the CJK
// unified ideograph range U+4E00..U+9FA5.
func ContainsChinese(s string) bool {
	if IsBlank(s) {
		return false
	}
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FA5 {
			return true
		}
	}
	return false
}

// IsURL reports whether s parses as an absolute URI with the http
// scheme. Only http is accepted; https is rejected.
func IsURL(s string) bool {
	if IsBlank(s) {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Scheme == "http"
}

// IsCulture reports whether s resolves to a known BCP 47 language tag,
// e.g. "en-US" or "zh-Hans".
func IsCulture(s string) bool {
	if IsBlank(s) {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}
