// This file implements name conversion from schema identifiers to valid Go
// identifiers, including reserved word escaping and PascalCase conversion.

package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Note: We only include actual keywords, not predeclared identifiers like "error",
// because those can be shadowed and are commonly used as type names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// titleCaser capitalizes the first letter of a word without lowering the
// rest, so "userType" stays "UserType" rather than becoming "Usertype".
var titleCaser = cases.Title(language.English, cases.NoLower)

// escapeReservedWord checks if a name is a Go reserved keyword and escapes it
// by appending an underscore if necessary. The check is case-insensitive
// because PascalCase names like "Range" or "Type" should still be escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// toTypeName converts a schema type name to a valid Go type name (PascalCase).
// It handles special characters, ensures the name starts with a letter,
// and escapes Go reserved words.
func toTypeName(s string) string {
	if s == "" {
		return "Type"
	}

	var result strings.Builder
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			result.WriteString(titleCaser.String(word.String()))
			word.Reset()
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	name := result.String()
	if name == "" {
		return "Type"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "T" + name
	}
	return escapeReservedWord(name)
}

// toFieldName converts a schema element name to a valid Go field name.
func toFieldName(s string) string {
	return toTypeName(s)
}
