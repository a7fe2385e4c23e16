package utils

import "github.com/microcosm-cc/bluemonday"

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips all HTML from user-entered text such as habit names and
// completion notes.
func Sanitize(input string) string {
	return strictPolicy.Sanitize(input)
}
