package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

	// đ/Đ are standalone letters, NFD does not decompose them
	letterReplacer = strings.NewReplacer("đ", "d", "Đ", "D", "ß", "ss", "æ", "ae", "Æ", "AE", "ø", "o", "Ø", "O")
)

// GenerateSlug turns a title into a lower-case, hyphen-separated slug.
//
//	"Nguyễn Nhật Ánh"       → "nguyen-nhat-anh"
//	"  Hello, World! 2024 " → "hello-world-2024"
func GenerateSlug(input string) string {
	// Step 1: strip diacritics
	ascii := RemoveDiacritics(input)

	// Step 2: lowercase
	lower := strings.ToLower(ascii)

	// Step 3: every run of non [a-z0-9] becomes a single hyphen
	hyphenated := nonSlugChars.ReplaceAllString(lower, "-")

	// Step 4: trim leading/trailing hyphens
	return strings.Trim(hyphenated, "-")
}

// RemoveDiacritics decomposes input (NFD), drops combining marks and maps the
// few letters that have no decomposition.
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, input)
	if err != nil {
		result = input
	}
	return letterReplacer.Replace(result)
}
