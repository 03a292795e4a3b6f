package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space) trigger capitalization of
// the next letter. Other letters keep their case.
// Example: "user_profile" -> "UserProfile"
// Example: "x-api-key" -> "XApiKey"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))
	capitalizeNext := true

	for _, r := range s {
		if isSeparator(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// The first word is lower-cased, every following word is capitalized with the
// remainder lower-cased.
// Example: "get user" -> "getUser"
// Example: "GetUserByID" -> "getUserById"
// Example: "getUser 400 Success" -> "getUser400Success"
func ToCamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))
	for i, w := range words {
		if i == 0 {
			result.WriteString(lower(w))
			continue
		}
		result.WriteString(capitalize(w))
	}
	return result.String()
}

// ToTagTitle turns a group name into a tag name: underscores become spaces
// and every whitespace-separated word gets an upper-case first letter with
// the rest lower-cased.
// Example: "user_management" -> "User Management"
// Example: "ADMIN tools" -> "Admin Tools"
func ToTagTitle(group string) string {
	s := strings.ReplaceAll(group, "_", " ")

	var result strings.Builder
	result.Grow(len(s))
	inWord := false
	start := 0
	flush := func(end int) {
		if inWord {
			result.WriteString(capitalize(s[start:end]))
			inWord = false
		}
	}
	for i, r := range s {
		if unicode.IsSpace(r) {
			flush(i)
			result.WriteRune(r)
			continue
		}
		if !inWord {
			inWord = true
			start = i
		}
	}
	flush(len(s))
	return result.String()
}

// Words splits s into words. Boundaries are non-alphanumeric runes,
// lower-to-upper transitions, letter/digit transitions and the end of an
// upper-case run followed by a lower-case letter ("HTTPServer" -> "HTTP", "Server").
func Words(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		boundary := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(r):
			boundary = true
		case unicode.IsDigit(prev) != unicode.IsDigit(r):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

// capitalize title-cases the first rune of w and lower-cases the rest.
// Punctuation inside w does not start a new word.
func capitalize(w string) string {
	if w == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToTitle(r)) + lower(w[size:])
}

// lower applies full Unicode lower-casing to a whole word. Casers keep
// state between calls, so each call gets its own.
func lower(w string) string {
	return cases.Lower(language.Und).String(w)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || r == ' '
}
