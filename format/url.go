package format

import (
	"net/url"
	"strings"
)

// IsURL reports whether s is a single well-formed absolute URL with a host,
// such as "https://example.com/a?b=c".
func IsURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
