package squidconf

import "regexp"

// loginPattern matches a login= option through the end of its line.
var loginPattern = regexp.MustCompile(`login=[^\r\n]*`)

// HidePassword masks every login= value in s.
func HidePassword(s string) string {
	return loginPattern.ReplaceAllString(s, "login=*****")
}
