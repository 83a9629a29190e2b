package helper

import (
	"regexp"
	"strings"
)

// CsvToStringSliceSkipBlanks splits a string of the form 'f1, f2,,f3' on commas, trims
// leading and trailing spaces from each token and drops tokens that are empty.
func CsvToStringSliceSkipBlanks(s string) []string {
	tokens := strings.Split(s, ",")
	retval := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t != "" {
			retval = append(retval, t)
		}
	}
	return retval
}

// SplitRight splits s around the last instance of c.
// If c is not found, return s, "".
func SplitRight(s string, c string) (string, string) {
	i := strings.LastIndex(s, c)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+len(c):]
}

// GetTrueFalseStringAsBool trims spaces from s and checks if it can regexp (case insensitive) match "true".
// It returns true if there's a match else false.
func GetTrueFalseStringAsBool(s string) bool {
	re := regexp.MustCompile("(?i)^true$")
	return re.MatchString(strings.TrimSpace(s))
}

// Mask returns a string of asterisks with the same number of characters as s.
func Mask(s string, maskChar string) string {
	return strings.Repeat(maskChar, len([]rune(s)))
}
