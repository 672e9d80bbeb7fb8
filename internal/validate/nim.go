package validate

import "regexp"

var nimRe = regexp.MustCompile(`^[0-9]+$`)

// NIM reports whether s is a well-formed student number: one or more
// digits, nothing else.
func NIM(s string) bool {
	return nimRe.MatchString(s)
}
