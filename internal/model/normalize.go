package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCode trims the code and folds it to upper case.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeCountry trims the country, collapses inner blanks into a single space and capitalizes every word.
func NormalizeCountry(country string) string {
	collapsed := strings.Join(strings.Fields(country), " ")

	caser := cases.Title(language.English)
	return caser.String(collapsed)
}
