package domain

import (
	"net/url"
	"strings"
)

// EnsureHTTPS normalizes a domain or URL to an https:// URL.
// Any existing scheme and leading slashes are stripped first, so
// "http://example.com", "//example.com" and "example.com" all come out as
// "https://example.com".
func EnsureHTTPS(raw string) string {
	s := strings.TrimSpace(raw)

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "https://"):
		return s
	case strings.HasPrefix(lower, "http://"):
		s = s[len("http://"):]
	}

	s = strings.TrimLeft(s, "/")
	return "https://" + s
}

// EncodeTerm percent-encodes a search term for use inside a URL template.
// It matches JavaScript's encodeURIComponent: spaces become %20 and the
// unreserved marks !~*'() stay literal, which browsers and the bang dataset
// both expect.
func EncodeTerm(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '!' || c == '~' ||
			c == '*' || c == '\'' || c == '(' || c == ')':
			b.WriteByte(c)
		default:
			b.WriteString(upperhex(c))
		}
	}
	return b.String()
}

const hexDigits = "0123456789ABCDEF"

func upperhex(c byte) string {
	return string([]byte{'%', hexDigits[c>>4], hexDigits[c&0xf]})
}

// IsValidURL reports whether raw parses as an absolute http(s) URL.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
