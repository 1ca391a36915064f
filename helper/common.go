package helper

import "regexp"

var DigitsRegex = regexp.MustCompile(`^[0-9]+$`)

func IsDigits(s string) bool {
	return DigitsRegex.MatchString(s)
}
