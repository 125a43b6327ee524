// Package validate holds the pure predicates that gate every code and URL
// before it reaches the store.
package validate

import (
	"net/url"
)

// Code length bounds, inclusive.
const (
	MinCodeLength = 6
	MaxCodeLength = 8
)

// Code reports whether s is a well-formed short code: 6 to 8 characters,
// each from [A-Za-z0-9]. Case sensitive.
func Code(s string) bool {
	if len(s) < MinCodeLength || len(s) > MaxCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			continue
		}
		return false
	}
	return true
}

// URL reports whether s is an absolute URL with scheme http or https and a
// non-empty host. Anything else (javascript:, file:, relative paths,
// unparsable strings) is rejected before insertion.
func URL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
