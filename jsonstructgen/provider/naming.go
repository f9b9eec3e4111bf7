package provider

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// commonInitialisms are rendered upper case when they form a whole word.
var commonInitialisms = map[string]bool{
	"Api": true, "Id": true, "Json": true, "Uri": true, "Url": true,
	"Http": true, "Https": true, "Ip": true, "Uuid": true, "Html": true,
	"Sql": true, "Tcp": true, "Tls": true, "Utc": true, "Xml": true,
}

// words splits s at every rune that cannot appear in an identifier.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// exportedName converts a schema name such as "first_name" or "user-id"
// into an exported Go identifier ("FirstName", "UserID").
func exportedName(s string) string {
	// NoLower keeps "userID" as "UserID".
	name := joinWords(s, cases.Title(language.Und, cases.NoLower))
	if name != "" && !unicode.IsLetter([]rune(name)[0]) {
		name = "X" + name
	}
	return name
}

// memberName converts an enum value into the suffix of a constant name;
// "IN_PROGRESS" becomes "InProgress".
func memberName(s string) string {
	if name := joinWords(s, cases.Title(language.Und)); name != "" {
		return name
	}
	return "Empty"
}

// joinWords title-cases each word of s. Casers carry state, so callers
// pass a fresh one.
func joinWords(s string, caser cases.Caser) string {
	var b strings.Builder
	for _, w := range words(s) {
		w = caser.String(w)
		if commonInitialisms[w] {
			w = strings.ToUpper(w)
		}
		b.WriteString(w)
	}
	return b.String()
}

// nameSet hands out unique names.
type nameSet map[string]bool

// claim returns name, or name with the smallest numeric suffix that is
// still free, and marks the result as used.
func (s nameSet) claim(name string) string {
	if !s[name] {
		s[name] = true
		return name
	}
	for i := 2; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !s[candidate] {
			s[candidate] = true
			return candidate
		}
	}
}
